package replay

import (
	"errors"

	"github.com/roach88/yrpconv/internal/duel"
)

// ErrFinished is returned when a log is used after Finish.
var ErrFinished = errors.New("replay log already finished")

// Block is one entry of the log. TimeOffsetMS is always zero for logs
// built from legacy streams, which carry no timing.
type Block struct {
	TimeOffsetMS uint32
	Msg          *duel.Msg
}

// Log is an ordered, append-only sequence of blocks.
type Log struct {
	blocks   []Block
	finished bool
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append adds msg as a new block with a zero time offset.
func (l *Log) Append(msg *duel.Msg) error {
	if l.finished {
		return ErrFinished
	}
	l.blocks = append(l.blocks, Block{Msg: msg})
	return nil
}

// Len returns the number of blocks.
func (l *Log) Len() int {
	return len(l.blocks)
}

// Blocks returns the blocks in append order. The slice must not be modified.
func (l *Log) Blocks() []Block {
	return l.blocks
}

// Finish serializes the log. It may be called once; later calls and
// appends return ErrFinished.
func (l *Log) Finish() ([]byte, error) {
	if l.finished {
		return nil, ErrFinished
	}
	l.finished = true
	return Marshal(l.blocks)
}

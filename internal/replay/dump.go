package replay

import (
	"encoding/json"
	"io"

	"github.com/roach88/yrpconv/internal/duel"
)

// LogView is the JSON shape written by Dump.
type LogView struct {
	Blocks []BlockView `json:"blocks"`
}

// BlockView is one block of a LogView.
type BlockView struct {
	TimeOffsetMS uint32       `json:"time_offset_ms"`
	Event        *EventView   `json:"event,omitempty"`
	Queries      []duel.Query `json:"queries,omitempty"`
}

// EventView tags an event with its kind.
type EventView struct {
	Kind duel.EventKind `json:"kind"`
	Data duel.Event     `json:"data"`
}

// View converts the log into its JSON shape.
func (l *Log) View() LogView {
	v := LogView{Blocks: make([]BlockView, 0, len(l.blocks))}
	for _, blk := range l.blocks {
		bv := BlockView{TimeOffsetMS: blk.TimeOffsetMS}
		if blk.Msg != nil {
			if blk.Msg.Event != nil {
				bv.Event = &EventView{Kind: blk.Msg.Event.Kind(), Data: blk.Msg.Event}
			}
			bv.Queries = blk.Msg.Queries
		}
		v.Blocks = append(v.Blocks, bv)
	}
	return v
}

// Dump writes the log as indented JSON.
func Dump(w io.Writer, l *Log) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l.View())
}

package transcode

import (
	"fmt"
	"log/slog"

	"github.com/roach88/yrpconv/internal/codec"
	"github.com/roach88/yrpconv/internal/duel"
	"github.com/roach88/yrpconv/internal/replay"
)

const (
	// HeaderSize is the legacy header: 1 type byte and a 4-byte size.
	HeaderSize = 5

	// OldFormatSentinel is the message type that marks the old replay
	// format. Framing stops there and keeps what was decoded so far.
	OldFormatSentinel uint8 = 231
)

// Stats counts what one transcode did.
type Stats struct {
	Messages          int  `json:"messages"`
	Blocks            int  `json:"blocks"`
	Swallowed         int  `json:"swallowed"`
	DroppedQueries    int  `json:"dropped_queries"`
	ClearedFields     int  `json:"cleared_fields"`
	BytesConsumed     int  `json:"bytes_consumed"`
	StoppedAtSentinel bool `json:"stopped_at_sentinel"`
}

// Result is a successful transcode.
type Result struct {
	// Log is the finished replay log.
	Log *replay.Log
	// Data is the serialized log.
	Data  []byte
	Stats Stats
}

// Transcode walks buf message by message, encodes each with enc, and
// returns the serialized replay log. buf is never modified.
//
// Returns *Error on any failure; see Class for the categories.
func Transcode(buf []byte, enc codec.Encoder) (*Result, error) {
	ctx := newReplayContext()
	log := replay.New()
	var stats Stats

	cur := &cursor{buf: buf}
	scratch := make([]byte, 0, 256)

	for !cur.done() {
		if cur.remaining() < HeaderSize {
			return nil, &Error{
				Class:   ClassTruncated,
				Message: fmt.Sprintf("unexpectedly short size for next message: %d bytes left", cur.remaining()),
				Offset:  cur.off,
			}
		}

		msgType, size := cur.header()
		if msgType == OldFormatSentinel {
			slog.Debug("old replay format marker, stopping", "offset", cur.off)
			stats.StoppedAtSentinel = true
			break
		}

		payload, ok := cur.payload(size)
		if !ok {
			return nil, &Error{
				Class:   ClassTruncated,
				Message: fmt.Sprintf("message declares %d payload bytes, %d left", size, cur.remaining()-HeaderSize),
				Offset:  cur.off,
				MsgType: msgType,
			}
		}

		// The encoder expects the type byte directly in front of the payload.
		scratch = append(append(scratch[:0], msgType), payload...)

		res := enc.Encode(scratch)
		switch res.State {
		case codec.StateOK:
		case codec.StateSpecial:
			res = enc.EncodeSpecial(ctx, scratch)
			switch res.State {
			case codec.StateOK:
			case codec.StateSwallowed:
				stats.Swallowed++
			default:
				return nil, &Error{
					Class:   ClassSpecialDecode,
					Message: fmt.Sprintf("special message %d could not be resolved", msgType),
					Offset:  cur.off,
					MsgType: msgType,
					Err:     res.Err,
				}
			}
		case codec.StateSwallowed:
			stats.Swallowed++
		default:
			return nil, &Error{
				Class:   ClassUnknownType,
				Message: fmt.Sprintf("encountered unknown core message number: %d", msgType),
				Offset:  cur.off,
				MsgType: msgType,
				Err:     res.Err,
			}
		}

		// A known message the encoder could not read to the end is also a
		// size disagreement, even when the outer byte counts happen to match.
		if res.BytesRead != int(size)+1 || res.Err != nil {
			slog.Error("encoder and framer disagree on message size",
				"offset", cur.off,
				"msg_type", msgType,
				"declared", int(size)+1,
				"consumed", res.BytesRead,
				"error", res.Err,
			)
			return nil, &Error{
				Class:   ClassMisaligned,
				Message: fmt.Sprintf("encoder consumed %d bytes, header declared %d", res.BytesRead, int(size)+1),
				Offset:  cur.off,
				MsgType: msgType,
				Err:     res.Err,
			}
		}
		// A message reaches the log only once its size checks out.
		if res.State == codec.StateOK {
			accept(ctx, log, res.Msg, &stats)
		}
		cur.advance(res.BytesRead)
		stats.Messages++
	}

	stats.BytesConsumed = cur.off
	stats.Blocks = log.Len()
	data, err := log.Finish()
	if err != nil {
		return nil, fmt.Errorf("finish replay log: %w", err)
	}
	return &Result{Log: log, Data: data, Stats: stats}, nil
}

// accept records msg: append first, then apply the event, then the queries,
// which may refer to what the event changed.
func accept(ctx *replayContext, log *replay.Log, msg *duel.Msg, stats *Stats) {
	if msg == nil {
		msg = &duel.Msg{}
	}
	// A fresh log cannot be finished here.
	_ = log.Append(msg)
	if msg.IsEvent() {
		ctx.board.ApplyEvent(msg.Event)
	}
	redactQueries(ctx.board, msg, stats)
}

// Package codec defines the boundary between the replay framer and a
// message encoder: the encoder interface, its result states, and the
// capability interface an encoder may consult when a message needs board
// context to be resolved.
package codec

import (
	"fmt"

	"github.com/roach88/yrpconv/internal/duel"
)

// State is the outcome of one encode call.
type State int

const (
	// StateUnknown means the message type is not recognized.
	StateUnknown State = iota
	// StateOK means a typed message was produced.
	StateOK
	// StateSpecial means the message needs EncodeSpecial with a Context.
	StateSpecial
	// StateSwallowed means the message was consumed and intentionally
	// produces no output.
	StateSwallowed
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateOK:
		return "ok"
	case StateSpecial:
		return "special"
	case StateSwallowed:
		return "swallowed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result reports one encode call. Msg is set only for StateOK. BytesRead
// counts the type byte and the payload consumed.
type Result struct {
	State     State
	Msg       *duel.Msg
	BytesRead int
	// Err describes why a special encode failed, if the encoder knows.
	Err error
}

// Encoder converts one core message into a typed message. buf starts with
// the message type byte followed by the payload.
type Encoder interface {
	Encode(buf []byte) Result
	EncodeSpecial(ctx Context, buf []byte) Result
}

// Context exposes the board state and bookkeeping an encoder needs to
// resolve special messages. Implementations are owned by one transcode.
type Context interface {
	// PileSize returns the number of cards con has at loc.
	PileSize(con uint8, loc duel.Location) int
	// HasCard reports whether p currently holds a card.
	HasCard(p duel.Place) bool
	// HasMaterials reports whether the card at p has attached materials.
	HasMaterials(p duel.Place) bool
	// MaterialSource returns the place now holding the materials that were
	// attached to the card that left `left`.
	MaterialSource(left duel.Place) (duel.Place, bool)
	// MatchWinReason returns the last recorded match win reason.
	MatchWinReason() uint32
	// SetMatchWinReason records the reason reported by a match-kill message.
	// The next duel result carries it.
	SetMatchWinReason(reason uint32)
	// DeferMaterial postpones attaching the card at material until a card
	// arrives at host.
	DeferMaterial(material, host duel.Place)
	// RecordMaterialSource notes that materials attached to the card that
	// left `left` are now held by the card at holder.
	RecordMaterialSource(left, holder duel.Place)
	// TakeDeferredMaterials returns the materials deferred for host in
	// deferral order and forgets them. Materials waiting for other hosts
	// stay deferred.
	TakeDeferredMaterials(host duel.Place) []duel.Place
}

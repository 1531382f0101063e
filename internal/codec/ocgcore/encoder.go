package ocgcore

import (
	"errors"
	"fmt"

	"github.com/roach88/yrpconv/internal/codec"
	"github.com/roach88/yrpconv/internal/duel"
)

// ErrNoMaterialSource is returned when a material is detached from a host
// that left its place without the move being recorded.
var ErrNoMaterialSource = errors.New("no recorded holder for detached material")

// Encoder implements codec.Encoder for the core message subset. It keeps no
// state; everything contextual goes through codec.Context.
type Encoder struct{}

// New returns an Encoder.
func New() *Encoder {
	return &Encoder{}
}

var _ codec.Encoder = (*Encoder)(nil)

// Encode decodes one message that needs no board context.
func (e *Encoder) Encode(buf []byte) codec.Result {
	if len(buf) == 0 {
		return codec.Result{State: codec.StateUnknown}
	}
	r := newReader(buf[1:])
	var msg *duel.Msg
	state := codec.StateOK

	switch buf[0] {
	case MsgHint:
		r.take(10)
		state = codec.StateSwallowed
	case MsgWaiting:
		state = codec.StateSwallowed
	case MsgWin, MsgMove, MsgMatchKill, MsgShuffleDeck, MsgShuffleHand:
		return codec.Result{State: codec.StateSpecial}
	case MsgUpdateData:
		msg = &duel.Msg{Queries: readUpdateData(r)}
	case MsgUpdateCard:
		msg = &duel.Msg{Queries: readUpdateCard(r)}
	case MsgNewTurn:
		msg = &duel.Msg{Event: duel.NewTurn{Player: r.u8()}}
	case MsgNewPhase:
		msg = &duel.Msg{Event: duel.NewPhase{Phase: uint32(r.u16())}}
	case MsgDraw:
		msg = &duel.Msg{Event: readDraw(r)}
	case MsgDamage, MsgRecover, MsgLPUpdate, MsgPayLPCost:
		msg = &duel.Msg{Event: duel.LPChange{
			Player: r.u8(),
			Type:   lpChangeType(buf[0]),
			Amount: r.u32(),
		}}
	default:
		return codec.Result{State: codec.StateUnknown}
	}

	if r.err != nil {
		return shortPayload(buf[0], r)
	}
	return codec.Result{State: state, Msg: msg, BytesRead: 1 + r.off}
}

// shortPayload reports a known message whose payload ended early. The
// message is recognized, so the state is OK; BytesRead counts only what was
// read and the framer reports the mismatch.
func shortPayload(msgType uint8, r *reader) codec.Result {
	return codec.Result{
		State:     codec.StateOK,
		BytesRead: 1 + r.off,
		Err:       fmt.Errorf("message %d: %w", msgType, r.err),
	}
}

// EncodeSpecial decodes one message that needs board context.
func (e *Encoder) EncodeSpecial(ctx codec.Context, buf []byte) codec.Result {
	if len(buf) == 0 {
		return codec.Result{State: codec.StateUnknown}
	}
	r := newReader(buf[1:])
	res := codec.Result{State: codec.StateOK}

	switch buf[0] {
	case MsgWin:
		res.Msg = &duel.Msg{Event: duel.Result{
			Winner:         r.u8(),
			Reason:         r.u8(),
			MatchWinReason: ctx.MatchWinReason(),
		}}
	case MsgMatchKill:
		reason := r.u32()
		if r.err == nil {
			ctx.SetMatchWinReason(reason)
		}
		res.State = codec.StateSwallowed
	case MsgMove:
		res = encodeMove(ctx, r)
	case MsgShuffleDeck, MsgShuffleHand:
		loc := duel.LocDeck
		if buf[0] == MsgShuffleHand {
			loc = duel.LocHand
		}
		player := r.u8()
		if r.err == nil {
			res.Msg = &duel.Msg{Event: duel.Shuffle{
				Player: player,
				Loc:    loc,
				Count:  uint32(ctx.PileSize(player, loc)),
			}}
		}
	default:
		return codec.Result{State: codec.StateUnknown}
	}

	if r.err != nil {
		return shortPayload(buf[0], r)
	}
	if res.Err != nil {
		return res
	}
	res.BytesRead = 1 + r.off
	return res
}

func encodeMove(ctx codec.Context, r *reader) codec.Result {
	code := r.u32()
	from, _ := readLocInfo(r)
	to, pos := readLocInfo(r)
	reason := r.u32()
	if r.err != nil {
		return codec.Result{}
	}

	if from.IsMaterial() && !ctx.HasMaterials(from.Host()) {
		holder, ok := ctx.MaterialSource(from.Host())
		if !ok {
			return codec.Result{
				State: codec.StateUnknown,
				Err:   fmt.Errorf("%w: %s", ErrNoMaterialSource, from),
			}
		}
		from = holder.Material(from.OSeq)
	}

	if to.IsMaterial() && !ctx.HasCard(to.Host()) {
		ctx.DeferMaterial(from, to.Host())
		return codec.Result{State: codec.StateSwallowed}
	}

	move := duel.CardMove{
		Code:     code,
		From:     from,
		To:       to,
		Position: pos,
		Reason:   reason,
	}
	if !from.IsMaterial() && from.Loc != 0 && ctx.HasMaterials(from) {
		ctx.RecordMaterialSource(from, to)
	}
	if !to.IsMaterial() && to.Loc != 0 {
		move.Materials = ctx.TakeDeferredMaterials(to)
	}
	return codec.Result{State: codec.StateOK, Msg: &duel.Msg{Event: move}}
}

func lpChangeType(msgType uint8) duel.LPChangeType {
	switch msgType {
	case MsgRecover:
		return duel.LPRecover
	case MsgLPUpdate:
		return duel.LPBecome
	case MsgPayLPCost:
		return duel.LPPay
	}
	return duel.LPDamage
}

func readDraw(r *reader) duel.Draw {
	d := duel.Draw{Player: r.u8()}
	n := r.u32()
	if r.err != nil || int(n) > r.remaining()/8 {
		r.take(int(n) * 8)
		return d
	}
	d.Cards = make([]duel.DrawnCard, 0, n)
	for range n {
		d.Cards = append(d.Cards, duel.DrawnCard{Code: r.u32(), Position: r.u32()})
	}
	return d
}

// readLocInfo returns the addressed place and the position field. For
// overlay locations the position is the material index and is returned as
// zero.
func readLocInfo(r *reader) (duel.Place, uint32) {
	con := r.u8()
	loc := duel.Location(r.u8())
	seq := r.u32()
	pos := r.u32()
	if loc&duel.LocOverlay != 0 {
		host := loc &^ duel.LocOverlay
		if host == 0 {
			host = duel.LocMonsterZone
		}
		return duel.At(con, host, seq).Material(int32(pos)), 0
	}
	return duel.At(con, loc, seq), pos
}

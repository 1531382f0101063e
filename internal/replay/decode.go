package replay

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/roach88/yrpconv/internal/duel"
	"github.com/roach88/yrpconv/internal/replay/replaypb"
)

// Decode parses bytes produced by Finish or Marshal.
func Decode(b []byte) (*Log, error) {
	var pb replaypb.Replay
	if err := proto.Unmarshal(b, &pb); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	l := New()
	for _, blk := range pb.GetStream().GetBlocks() {
		l.blocks = append(l.blocks, fromBlock(blk))
	}
	return l, nil
}

func fromBlock(blk *replaypb.Block) Block {
	out := Block{TimeOffsetMS: blk.GetTimeOffsetMs()}
	m := blk.GetMsg()
	if m == nil {
		return out
	}
	out.Msg = &duel.Msg{Event: fromEvent(m.GetEvent())}
	for _, q := range m.GetQueries() {
		out.Msg.Queries = append(out.Msg.Queries, duel.Query{
			Place: fromPlace(q.GetPlace()),
			Data:  fromQueryData(q.GetData()),
		})
	}
	return out
}

func fromEvent(ev *replaypb.Event) duel.Event {
	switch k := ev.GetKind().(type) {
	case *replaypb.Event_NewTurn:
		return duel.NewTurn{Player: uint8(k.NewTurn.GetPlayer())}
	case *replaypb.Event_NewPhase:
		return duel.NewPhase{Phase: k.NewPhase.GetPhase()}
	case *replaypb.Event_Draw:
		d := duel.Draw{Player: uint8(k.Draw.GetPlayer())}
		for _, c := range k.Draw.GetCards() {
			d.Cards = append(d.Cards, duel.DrawnCard{Code: c.GetCode(), Position: c.GetPosition()})
		}
		return d
	case *replaypb.Event_CardMove:
		m := k.CardMove
		move := duel.CardMove{
			Code:     m.GetCode(),
			From:     fromPlace(m.GetFrom()),
			To:       fromPlace(m.GetTo()),
			Position: m.GetPosition(),
			Reason:   m.GetReason(),
		}
		for _, p := range m.GetMaterials() {
			move.Materials = append(move.Materials, fromPlace(p))
		}
		return move
	case *replaypb.Event_Shuffle:
		s := k.Shuffle
		return duel.Shuffle{Player: uint8(s.GetPlayer()), Loc: duel.Location(s.GetLoc()), Count: s.GetCount()}
	case *replaypb.Event_LpChange:
		c := k.LpChange
		return duel.LPChange{Player: uint8(c.GetPlayer()), Type: duel.LPChangeType(c.GetType()), Amount: c.GetAmount()}
	case *replaypb.Event_Result:
		r := k.Result
		return duel.Result{
			Winner:         uint8(r.GetWinner()),
			Reason:         uint8(r.GetReason()),
			MatchWinReason: r.GetMatchWinReason(),
		}
	}
	return nil
}

func fromPlace(p *replaypb.Place) duel.Place {
	if p == nil {
		return duel.At(0, 0, 0)
	}
	return duel.Place{
		Con:  uint8(p.GetCon()),
		Loc:  duel.Location(p.GetLoc()),
		Seq:  p.GetSeq(),
		OSeq: p.GetOseq(),
	}
}

func fromQueryData(d *replaypb.QueryData) duel.QueryData {
	if d == nil {
		return duel.QueryData{}
	}
	out := duel.QueryData{
		IsPublic:   d.IsPublic,
		IsHidden:   d.IsHidden,
		Position:   d.Position,
		Cover:      d.Cover,
		Status:     d.Status,
		Code:       d.Code,
		Alias:      d.Alias,
		Type:       d.Type,
		Level:      d.Level,
		XyzRank:    d.XyzRank,
		Attribute:  d.Attribute,
		Race:       d.Race,
		BaseAtk:    d.BaseAtk,
		Atk:        d.Atk,
		BaseDef:    d.BaseDef,
		Def:        d.Def,
		PendLScale: d.PendLScale,
		PendRScale: d.PendRScale,
		LinkRate:   d.LinkRate,
		LinkArrow:  d.LinkArrow,
	}
	if d.Owner != nil {
		out.Owner = duel.Ptr(uint8(*d.Owner))
	}
	if d.Counters != nil {
		out.Counters = &duel.Counters{}
		for _, c := range d.Counters.GetValues() {
			out.Counters.Values = append(out.Counters.Values, duel.Counter{Type: c.GetType(), Count: c.GetCount()})
		}
	}
	if d.Equipped != nil {
		p := fromPlace(d.Equipped)
		out.Equipped = &p
	}
	if d.Relations != nil {
		out.Relations = &duel.Places{}
		for _, p := range d.Relations.GetValues() {
			out.Relations.Values = append(out.Relations.Values, fromPlace(p))
		}
	}
	return out
}

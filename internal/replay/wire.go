package replay

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/roach88/yrpconv/internal/duel"
	"github.com/roach88/yrpconv/internal/replay/replaypb"
)

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// Marshal encodes blocks as a replaypb.Replay. An empty log encodes to no
// bytes at all.
func Marshal(blocks []Block) ([]byte, error) {
	if len(blocks) == 0 {
		return []byte{}, nil
	}
	stream := &replaypb.Stream{Blocks: make([]*replaypb.Block, 0, len(blocks))}
	for i := range blocks {
		stream.Blocks = append(stream.Blocks, toBlock(&blocks[i]))
	}
	data, err := marshalOptions.Marshal(&replaypb.Replay{Stream: stream})
	if err != nil {
		return nil, fmt.Errorf("marshal replay: %w", err)
	}
	return data, nil
}

func toBlock(blk *Block) *replaypb.Block {
	out := &replaypb.Block{TimeOffsetMs: blk.TimeOffsetMS}
	if blk.Msg == nil {
		return out
	}
	out.Msg = &replaypb.Msg{Event: toEvent(blk.Msg.Event)}
	for i := range blk.Msg.Queries {
		out.Msg.Queries = append(out.Msg.Queries, toQuery(&blk.Msg.Queries[i]))
	}
	return out
}

func toEvent(ev duel.Event) *replaypb.Event {
	switch e := ev.(type) {
	case duel.NewTurn:
		return &replaypb.Event{Kind: &replaypb.Event_NewTurn{
			NewTurn: &replaypb.NewTurn{Player: uint32(e.Player)},
		}}
	case duel.NewPhase:
		return &replaypb.Event{Kind: &replaypb.Event_NewPhase{
			NewPhase: &replaypb.NewPhase{Phase: e.Phase},
		}}
	case duel.Draw:
		d := &replaypb.Draw{Player: uint32(e.Player)}
		for _, c := range e.Cards {
			d.Cards = append(d.Cards, &replaypb.DrawnCard{Code: c.Code, Position: c.Position})
		}
		return &replaypb.Event{Kind: &replaypb.Event_Draw{Draw: d}}
	case duel.CardMove:
		m := &replaypb.CardMove{
			Code:     e.Code,
			From:     toPlace(e.From),
			To:       toPlace(e.To),
			Position: e.Position,
			Reason:   e.Reason,
		}
		for _, p := range e.Materials {
			m.Materials = append(m.Materials, toPlace(p))
		}
		return &replaypb.Event{Kind: &replaypb.Event_CardMove{CardMove: m}}
	case duel.Shuffle:
		return &replaypb.Event{Kind: &replaypb.Event_Shuffle{
			Shuffle: &replaypb.Shuffle{Player: uint32(e.Player), Loc: uint32(e.Loc), Count: e.Count},
		}}
	case duel.LPChange:
		return &replaypb.Event{Kind: &replaypb.Event_LpChange{
			LpChange: &replaypb.LPChange{Player: uint32(e.Player), Type: uint32(e.Type), Amount: e.Amount},
		}}
	case duel.Result:
		return &replaypb.Event{Kind: &replaypb.Event_Result{
			Result: &replaypb.Result{
				Winner:         uint32(e.Winner),
				Reason:         uint32(e.Reason),
				MatchWinReason: e.MatchWinReason,
			},
		}}
	}
	return nil
}

func toPlace(p duel.Place) *replaypb.Place {
	return &replaypb.Place{Con: uint32(p.Con), Loc: uint32(p.Loc), Seq: p.Seq, Oseq: p.OSeq}
}

func toQuery(q *duel.Query) *replaypb.Query {
	d := &q.Data
	out := &replaypb.QueryData{
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
		out.Owner = proto.Uint32(uint32(*d.Owner))
	}
	if d.Counters != nil {
		out.Counters = &replaypb.CounterList{}
		for _, c := range d.Counters.Values {
			out.Counters.Values = append(out.Counters.Values, &replaypb.Counter{Type: c.Type, Count: c.Count})
		}
	}
	if d.Equipped != nil {
		out.Equipped = toPlace(*d.Equipped)
	}
	if d.Relations != nil {
		out.Relations = &replaypb.PlaceList{}
		for _, p := range d.Relations.Values {
			out.Relations.Values = append(out.Relations.Values, toPlace(p))
		}
	}
	return &replaypb.Query{Place: toPlace(q.Place), Data: out}
}

package board

import (
	"log/slog"

	"github.com/roach88/yrpconv/internal/duel"
)

// ApplyEvent updates the board layout for ev.
func (b *Board) ApplyEvent(ev duel.Event) {
	switch e := ev.(type) {
	case duel.NewTurn:
		b.turn++
		b.turnPlayer = e.Player
	case duel.NewPhase:
		b.phase = e.Phase
	case duel.Draw:
		b.applyDraw(e)
	case duel.CardMove:
		b.applyMove(e)
	case duel.Shuffle:
		// Order is unknown afterwards; the layout is unchanged.
	case duel.LPChange:
		b.applyLP(e)
	case duel.Result:
		r := e
		b.result = &r
	default:
		slog.Warn("unhandled board event", "kind", ev.Kind())
	}
}

func (b *Board) applyDraw(e duel.Draw) {
	deck := pileKey{e.Player, duel.LocDeck}
	hand := pileKey{e.Player, duel.LocHand}
	for _, drawn := range e.Cards {
		var c *Card
		if pile := b.piles[deck]; len(pile) > 0 {
			c = pile[len(pile)-1]
			b.piles[deck] = pile[:len(pile)-1]
		} else {
			c = &Card{}
		}
		c.Code = drawn.Code
		c.Position = drawn.Position
		b.piles[hand] = append(b.piles[hand], c)
	}
}

func (b *Board) applyMove(e duel.CardMove) {
	// Resolve materials before anything moves so pile indices stay valid.
	materials := make([]*Card, 0, len(e.Materials))
	for _, p := range e.Materials {
		if m := b.Card(p); m != nil {
			materials = append(materials, m)
		} else {
			slog.Debug("deferred material not on board", "place", p)
		}
	}

	c := b.take(e.From)
	if c == nil {
		c = &Card{}
	}
	if e.Code != 0 {
		c.Code = e.Code
	}
	c.Position = e.Position
	b.put(c, e.To)

	for _, m := range materials {
		if m == c {
			continue
		}
		b.remove(m)
		c.Materials = append(c.Materials, m)
	}
}

func (b *Board) applyLP(e duel.LPChange) {
	if e.Player > 1 {
		slog.Warn("lp change for unknown player", "player", e.Player)
		return
	}
	lp := &b.lp[e.Player]
	switch e.Type {
	case duel.LPDamage, duel.LPPay:
		if e.Amount > *lp {
			*lp = 0
		} else {
			*lp -= e.Amount
		}
	case duel.LPRecover:
		*lp += e.Amount
	case duel.LPBecome:
		*lp = e.Amount
	}
}

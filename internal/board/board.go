package board

import (
	"log/slog"
	"slices"

	"github.com/roach88/yrpconv/internal/duel"
)

// StartingLP is the life point total of both players before any LP message.
const StartingLP = 8000

// Card is one tracked card. Materials are ordered by overlay sequence.
type Card struct {
	Code      uint32
	Position  uint32
	Materials []*Card

	cache duel.QueryData
}

type pileKey struct {
	con uint8
	loc duel.Location
}

// Board is the in-memory model of one duel. Not safe for concurrent use.
type Board struct {
	piles map[pileKey][]*Card
	zones map[duel.Place]*Card

	turn       uint32
	turnPlayer uint8
	phase      uint32
	lp         [2]uint32
	result     *duel.Result
}

// New returns an empty board.
func New() *Board {
	return &Board{
		piles: make(map[pileKey][]*Card),
		zones: make(map[duel.Place]*Card),
		lp:    [2]uint32{StartingLP, StartingLP},
	}
}

// Card returns the card at p, or nil when p holds no card.
func (b *Board) Card(p duel.Place) *Card {
	if p.IsMaterial() {
		host := b.Card(p.Host())
		if host == nil || int(p.OSeq) >= len(host.Materials) {
			return nil
		}
		return host.Materials[p.OSeq]
	}
	if p.Loc.IsPile() {
		pile := b.piles[pileKey{p.Con, p.Loc}]
		if int(p.Seq) >= len(pile) {
			return nil
		}
		return pile[p.Seq]
	}
	return b.zones[p]
}

// HasCard reports whether p currently holds a card.
func (b *Board) HasCard(p duel.Place) bool {
	return b.Card(p) != nil
}

// PileSize returns the number of cards con has at loc. For field locations
// it counts occupied slots.
func (b *Board) PileSize(con uint8, loc duel.Location) int {
	if loc.IsPile() {
		return len(b.piles[pileKey{con, loc}])
	}
	n := 0
	for p := range b.zones {
		if p.Con == con && p.Loc == loc {
			n++
		}
	}
	return n
}

// HasMaterials reports whether the card at p has any attached material.
func (b *Board) HasMaterials(p duel.Place) bool {
	c := b.Card(p.Host())
	return c != nil && len(c.Materials) > 0
}

// Turn returns the number of turns started so far.
func (b *Board) Turn() uint32 { return b.turn }

// TurnPlayer returns the player whose turn it is.
func (b *Board) TurnPlayer() uint8 { return b.turnPlayer }

// Phase returns the current phase value.
func (b *Board) Phase() uint32 { return b.phase }

// LP returns the life points of player.
func (b *Board) LP(player uint8) uint32 {
	if player > 1 {
		return 0
	}
	return b.lp[player]
}

// Result returns the duel result, or nil while the duel is running.
func (b *Board) Result() *duel.Result { return b.result }

// Places returns every occupied place, sorted. Materials are not listed.
func (b *Board) Places() []duel.Place {
	var out []duel.Place
	for k, pile := range b.piles {
		for i := range pile {
			out = append(out, duel.At(k.con, k.loc, uint32(i)))
		}
	}
	for p := range b.zones {
		out = append(out, p)
	}
	slices.SortFunc(out, duel.Place.Compare)
	return out
}

// take removes and returns the card at p, or nil when p is empty.
func (b *Board) take(p duel.Place) *Card {
	switch {
	case p.Loc == 0:
		return nil
	case p.IsMaterial():
		host := b.Card(p.Host())
		if host == nil || int(p.OSeq) >= len(host.Materials) {
			return nil
		}
		c := host.Materials[p.OSeq]
		host.Materials = slices.Delete(host.Materials, int(p.OSeq), int(p.OSeq)+1)
		return c
	case p.Loc.IsPile():
		k := pileKey{p.Con, p.Loc}
		pile := b.piles[k]
		if int(p.Seq) >= len(pile) {
			return nil
		}
		c := pile[p.Seq]
		b.piles[k] = slices.Delete(pile, int(p.Seq), int(p.Seq)+1)
		return c
	default:
		c := b.zones[p]
		delete(b.zones, p)
		return c
	}
}

// put places c at p. Sequences past the end of a pile or material list
// append.
func (b *Board) put(c *Card, p duel.Place) {
	switch {
	case p.Loc == 0:
		// Leaves play.
	case p.IsMaterial():
		host := b.Card(p.Host())
		if host == nil {
			slog.Debug("material attached to empty place, dropped", "place", p)
			return
		}
		i := min(int(p.OSeq), len(host.Materials))
		host.Materials = slices.Insert(host.Materials, i, c)
	case p.Loc.IsPile():
		k := pileKey{p.Con, p.Loc}
		i := min(int(p.Seq), len(b.piles[k]))
		b.piles[k] = slices.Insert(b.piles[k], i, c)
	default:
		b.zones[p] = c
	}
}

// remove detaches c from wherever it currently is.
func (b *Board) remove(c *Card) bool {
	for k, pile := range b.piles {
		if i := slices.Index(pile, c); i >= 0 {
			b.piles[k] = slices.Delete(pile, i, i+1)
			return true
		}
	}
	for p, z := range b.zones {
		if z == c {
			delete(b.zones, p)
			return true
		}
	}
	for _, host := range b.allCards() {
		if i := slices.Index(host.Materials, c); i >= 0 {
			host.Materials = slices.Delete(host.Materials, i, i+1)
			return true
		}
	}
	return false
}

func (b *Board) allCards() []*Card {
	var out []*Card
	for _, pile := range b.piles {
		out = append(out, pile...)
	}
	for _, c := range b.zones {
		out = append(out, c)
	}
	return out
}

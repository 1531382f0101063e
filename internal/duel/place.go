package duel

import (
	"cmp"
	"fmt"
)

// Location is a bit flag identifying a card location, using the core's values.
type Location uint32

const (
	LocDeck         Location = 0x01
	LocHand         Location = 0x02
	LocMonsterZone  Location = 0x04
	LocSpellZone    Location = 0x08
	LocGrave        Location = 0x10
	LocBanished     Location = 0x20
	LocExtra        Location = 0x40
	LocOverlay      Location = 0x80
	LocFieldZone    Location = 0x100
	LocPendulumZone Location = 0x200

	LocOnField = LocMonsterZone | LocSpellZone | LocFieldZone | LocPendulumZone
)

// IsPile reports whether cards at loc form an ordered stack rather than
// fixed slots.
func (l Location) IsPile() bool {
	switch l {
	case LocDeck, LocHand, LocGrave, LocBanished, LocExtra:
		return true
	}
	return false
}

// IsZone reports whether loc is a single fixed-slot field location.
func (l Location) IsZone() bool {
	switch l {
	case LocMonsterZone, LocSpellZone, LocFieldZone, LocPendulumZone:
		return true
	}
	return false
}

func (l Location) String() string {
	switch l {
	case LocDeck:
		return "deck"
	case LocHand:
		return "hand"
	case LocMonsterZone:
		return "mzone"
	case LocSpellZone:
		return "szone"
	case LocGrave:
		return "grave"
	case LocBanished:
		return "banished"
	case LocExtra:
		return "extra"
	case LocOverlay:
		return "overlay"
	case LocFieldZone:
		return "fzone"
	case LocPendulumZone:
		return "pzone"
	case 0:
		return "none"
	}
	return fmt.Sprintf("loc(0x%x)", uint32(l))
}

// NoOverlay is the OSeq of a place that addresses the slot card itself.
const NoOverlay int32 = -1

// Place addresses a card: the card at (Con, Loc, Seq) when OSeq is NoOverlay,
// otherwise material number OSeq attached to that card.
type Place struct {
	Con  uint8    `json:"con"`
	Loc  Location `json:"loc"`
	Seq  uint32   `json:"seq"`
	OSeq int32    `json:"oseq"`
}

// At returns the place of the card at (con, loc, seq).
func At(con uint8, loc Location, seq uint32) Place {
	return Place{Con: con, Loc: loc, Seq: seq, OSeq: NoOverlay}
}

// Material returns the place of material i attached to the card at p.
func (p Place) Material(i int32) Place {
	p.OSeq = i
	return p
}

// Host returns the place of the card p is attached to (p itself when p is
// not a material).
func (p Place) Host() Place {
	p.OSeq = NoOverlay
	return p
}

// IsMaterial reports whether p addresses an attached material.
func (p Place) IsMaterial() bool {
	return p.OSeq >= 0
}

// Compare orders places by controller, location, sequence and overlay
// sequence.
func (p Place) Compare(o Place) int {
	if c := cmp.Compare(p.Con, o.Con); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Loc, o.Loc); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Seq, o.Seq); c != 0 {
		return c
	}
	return cmp.Compare(p.OSeq, o.OSeq)
}

// Less reports whether p sorts before o.
func (p Place) Less(o Place) bool {
	return p.Compare(o) < 0
}

func (p Place) String() string {
	if p.IsMaterial() {
		return fmt.Sprintf("p%d/%s/%d#%d", p.Con, p.Loc, p.Seq, p.OSeq)
	}
	return fmt.Sprintf("p%d/%s/%d", p.Con, p.Loc, p.Seq)
}

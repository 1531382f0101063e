package transcode

import (
	"github.com/roach88/yrpconv/internal/board"
	"github.com/roach88/yrpconv/internal/codec"
	"github.com/roach88/yrpconv/internal/duel"
)

// replayContext is the capability context handed to the encoder. It lives
// for exactly one transcode.
type replayContext struct {
	board *board.Board

	matchWinReason uint32
	left           map[duel.Place]duel.Place
	deferred       []deferredMaterial
}

// deferredMaterial is a card that became a material before its host was
// placed.
type deferredMaterial struct {
	material duel.Place
	host     duel.Place
}

var _ codec.Context = (*replayContext)(nil)

func newReplayContext() *replayContext {
	return &replayContext{
		board: board.New(),
		left:  make(map[duel.Place]duel.Place),
	}
}

func (c *replayContext) PileSize(con uint8, loc duel.Location) int {
	return c.board.PileSize(con, loc)
}

func (c *replayContext) HasCard(p duel.Place) bool {
	return c.board.HasCard(p)
}

func (c *replayContext) HasMaterials(p duel.Place) bool {
	return c.board.HasMaterials(p)
}

func (c *replayContext) MaterialSource(left duel.Place) (duel.Place, bool) {
	holder, ok := c.left[left]
	return holder, ok
}

func (c *replayContext) MatchWinReason() uint32 {
	return c.matchWinReason
}

func (c *replayContext) SetMatchWinReason(reason uint32) {
	c.matchWinReason = reason
}

func (c *replayContext) DeferMaterial(material, host duel.Place) {
	c.deferred = append(c.deferred, deferredMaterial{material: material, host: host})
}

func (c *replayContext) RecordMaterialSource(left, holder duel.Place) {
	c.left[left] = holder
}

// TakeDeferredMaterials removes the entries waiting for host, so an entry
// is returned at most once.
func (c *replayContext) TakeDeferredMaterials(host duel.Place) []duel.Place {
	var taken []duel.Place
	kept := c.deferred[:0]
	for _, d := range c.deferred {
		if d.host == host {
			taken = append(taken, d.material)
			continue
		}
		kept = append(kept, d)
	}
	c.deferred = kept
	return taken
}

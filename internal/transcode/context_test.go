package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/yrpconv/internal/codec"
	"github.com/roach88/yrpconv/internal/codec/ocgcore"
	"github.com/roach88/yrpconv/internal/duel"
)

func TestReplayContext_DeferredAtMostOnce(t *testing.T) {
	ctx := newReplayContext()
	a := duel.At(0, duel.LocHand, 0)
	b := duel.At(0, duel.LocGrave, 1)
	host := duel.At(0, duel.LocMonsterZone, 2)

	ctx.DeferMaterial(a, host)
	ctx.DeferMaterial(b, host)
	assert.Equal(t, []duel.Place{a, b}, ctx.TakeDeferredMaterials(host))
	assert.Empty(t, ctx.TakeDeferredMaterials(host))

	ctx.DeferMaterial(b, host)
	assert.Equal(t, []duel.Place{b}, ctx.TakeDeferredMaterials(host))
}

func TestReplayContext_DeferredPerHost(t *testing.T) {
	ctx := newReplayContext()
	a := duel.At(0, duel.LocHand, 0)
	b := duel.At(0, duel.LocHand, 1)
	c := duel.At(1, duel.LocGrave, 0)
	first := duel.At(0, duel.LocMonsterZone, 1)
	second := duel.At(0, duel.LocMonsterZone, 3)

	ctx.DeferMaterial(a, first)
	ctx.DeferMaterial(c, second)
	ctx.DeferMaterial(b, first)

	assert.Empty(t, ctx.TakeDeferredMaterials(duel.At(0, duel.LocMonsterZone, 0)))
	assert.Equal(t, []duel.Place{c}, ctx.TakeDeferredMaterials(second))
	assert.Equal(t, []duel.Place{a, b}, ctx.TakeDeferredMaterials(first))
	assert.Empty(t, ctx.deferred)
}

func TestReplayContext_ShuffleCountFromBoard(t *testing.T) {
	ctx := newReplayContext()
	ctx.board.ApplyEvent(duel.Draw{Player: 1, Cards: []duel.DrawnCard{{Code: 1}, {Code: 2}}})
	assert.Equal(t, 2, ctx.PileSize(1, duel.LocHand))

	res := ocgcore.New().EncodeSpecial(ctx, []byte{ocgcore.MsgShuffleHand, 1})
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, 2, res.BytesRead)
	assert.Equal(t, duel.Shuffle{Player: 1, Loc: duel.LocHand, Count: 2}, res.Msg.Event)
}

func TestReplayContext_MaterialSource(t *testing.T) {
	ctx := newReplayContext()
	left := duel.At(1, duel.LocMonsterZone, 0)
	holder := duel.At(1, duel.LocMonsterZone, 2)

	_, ok := ctx.MaterialSource(left)
	assert.False(t, ok)

	ctx.RecordMaterialSource(left, holder)
	got, ok := ctx.MaterialSource(left)
	assert.True(t, ok)
	assert.Equal(t, holder, got)
}

func TestReplayContext_MatchWinReason(t *testing.T) {
	ctx := newReplayContext()
	assert.Zero(t, ctx.MatchWinReason())
	ctx.SetMatchWinReason(2)
	assert.Equal(t, uint32(2), ctx.MatchWinReason())
}

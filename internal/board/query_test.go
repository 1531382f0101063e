package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/yrpconv/internal/duel"
)

func TestApplyQuery_Hits(t *testing.T) {
	b := New()
	p := duel.At(0, duel.LocMonsterZone, 0)
	b.ApplyEvent(duel.CardMove{Code: 10, From: duel.Place{OSeq: duel.NoOverlay}, To: p})

	first := duel.Query{Place: p, Data: duel.QueryData{
		Atk:      duel.Ptr[int32](1000),
		Level:    duel.Ptr[uint32](4),
		Counters: &duel.Counters{Values: []duel.Counter{{Type: 1, Count: 1}}},
	}}
	assert.Zero(t, b.ApplyQuery(&first), "first sighting of every field")

	second := duel.Query{Place: p, Data: duel.QueryData{
		Atk:      duel.Ptr[int32](1000),
		Level:    duel.Ptr[uint32](5),
		Counters: &duel.Counters{Values: []duel.Counter{{Type: 1, Count: 1}}},
	}}
	hits := b.ApplyQuery(&second)
	assert.True(t, hits.Has(duel.HitAtk))
	assert.True(t, hits.Has(duel.HitCounters))
	assert.False(t, hits.Has(duel.HitLevel))

	third := duel.Query{Place: p, Data: duel.QueryData{Level: duel.Ptr[uint32](5)}}
	assert.Equal(t, duel.HitLevel, b.ApplyQuery(&third))
}

func TestApplyQuery_EmptyPlace(t *testing.T) {
	b := New()
	q := duel.Query{Place: duel.At(0, duel.LocSpellZone, 1), Data: duel.QueryData{Code: duel.Ptr[uint32](5)}}
	assert.Zero(t, b.ApplyQuery(&q))
}

func TestApplyQuery_CacheTravelsWithCard(t *testing.T) {
	b := New()
	zone := duel.At(0, duel.LocMonsterZone, 0)
	b.ApplyEvent(duel.CardMove{Code: 10, From: duel.Place{OSeq: duel.NoOverlay}, To: zone})

	q := duel.Query{Place: zone, Data: duel.QueryData{Def: duel.Ptr[int32](1200)}}
	b.ApplyQuery(&q)

	grave := duel.At(0, duel.LocGrave, 0)
	b.ApplyEvent(duel.CardMove{From: zone, To: grave})

	again := duel.Query{Place: grave, Data: duel.QueryData{Def: duel.Ptr[int32](1200)}}
	assert.Equal(t, duel.HitDef, b.ApplyQuery(&again))
}

func TestApplyQuery_UpdatesCard(t *testing.T) {
	b := New()
	p := duel.At(1, duel.LocMonsterZone, 4)
	b.ApplyEvent(duel.CardMove{From: duel.Place{OSeq: duel.NoOverlay}, To: p})

	q := duel.Query{Place: p, Data: duel.QueryData{Code: duel.Ptr[uint32](77), Position: duel.Ptr[uint32](0x8)}}
	b.ApplyQuery(&q)

	c := b.Card(p)
	assert.Equal(t, uint32(77), c.Code)
	assert.Equal(t, uint32(0x8), c.Position)
}

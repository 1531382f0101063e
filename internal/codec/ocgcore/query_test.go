package ocgcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/yrpconv/internal/codec"
	"github.com/roach88/yrpconv/internal/duel"
)

// field appends one [u16 size][u32 flag][body] query field.
func (b *msgBuilder) field(flag uint32, body ...uint32) *msgBuilder {
	b.u16(uint16(4 + 4*len(body))).u32(flag)
	for _, v := range body {
		b.u32(v)
	}
	return b
}

func record(fields func(*msgBuilder)) []byte {
	r := &msgBuilder{}
	fields(r)
	r.u16(4).u32(queryEnd)
	return r.bytes()
}

func TestEncode_UpdateCard(t *testing.T) {
	rec := record(func(r *msgBuilder) {
		r.field(queryCode, 46986414)
		r.field(queryAttack, 2500)
		r.field(queryCounters, 2, 0x0003_0001, 0x0001_0002)
		r.field(queryLink, 2, 0x28)
	})
	buf := msg(MsgUpdateCard).u8(0).u8(uint8(duel.LocMonsterZone)).u32(2).u32(uint32(len(rec))).bytes()
	buf = append(buf, rec...)

	res := New().Encode(buf)
	require.Equal(t, codec.StateOK, res.State)
	require.NoError(t, res.Err)
	assert.Equal(t, len(buf), res.BytesRead)
	assert.False(t, res.Msg.IsEvent())
	require.Len(t, res.Msg.Queries, 1)

	q := res.Msg.Queries[0]
	assert.Equal(t, duel.At(0, duel.LocMonsterZone, 2), q.Place)
	assert.Equal(t, uint32(46986414), *q.Data.Code)
	assert.Equal(t, int32(2500), *q.Data.Atk)
	assert.Equal(t, []duel.Counter{{Type: 1, Count: 3}, {Type: 2, Count: 1}}, q.Data.Counters.Values)
	assert.Equal(t, uint32(2), *q.Data.LinkRate)
	assert.Equal(t, uint32(0x28), *q.Data.LinkArrow)
	assert.Nil(t, q.Data.Def)
}

func TestEncode_UpdateDataSkipsEmptySlots(t *testing.T) {
	rec := record(func(r *msgBuilder) { r.field(queryDefense, 1200) })
	buf := msg(MsgUpdateData).u8(1).u8(uint8(duel.LocMonsterZone)).u32(3).
		u32(0).
		u32(uint32(len(rec))).bytes()
	buf = append(buf, rec...)
	buf = append(buf, 0, 0, 0, 0)

	res := New().Encode(buf)
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, len(buf), res.BytesRead)
	require.Len(t, res.Msg.Queries, 1)
	assert.Equal(t, duel.At(1, duel.LocMonsterZone, 1), res.Msg.Queries[0].Place)
	assert.Equal(t, int32(1200), *res.Msg.Queries[0].Data.Def)
}

func TestEncode_UpdateCardRelations(t *testing.T) {
	r := &msgBuilder{}
	r.u16(4 + 4 + 10).u32(queryTargetCard).u32(1).loc(1, duel.LocSpellZone, 0, 0)
	r.u16(4 + 10).u32(queryEquipCard).loc(0, duel.LocSpellZone, 3, 0)
	r.u16(4).u32(queryEnd)
	rec := r.bytes()

	buf := msg(MsgUpdateCard).u8(0).u8(uint8(duel.LocMonsterZone)).u32(0).u32(uint32(len(rec))).bytes()
	buf = append(buf, rec...)

	res := New().Encode(buf)
	require.Equal(t, codec.StateOK, res.State)
	q := res.Msg.Queries[0]
	assert.Equal(t, []duel.Place{duel.At(1, duel.LocSpellZone, 0)}, q.Data.Relations.Values)
	assert.Equal(t, duel.At(0, duel.LocSpellZone, 3), *q.Data.Equipped)
}

func TestEncode_UpdateCardShortRecord(t *testing.T) {
	buf := msg(MsgUpdateCard).u8(0).u8(uint8(duel.LocHand)).u32(0).u32(64).u32(1).bytes()
	res := New().Encode(buf)
	assert.Equal(t, codec.StateOK, res.State)
	assert.Nil(t, res.Msg)
	assert.Less(t, res.BytesRead, len(buf))
	assert.ErrorIs(t, res.Err, ErrShortPayload)
}

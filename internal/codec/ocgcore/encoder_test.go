package ocgcore

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/yrpconv/internal/codec"
	"github.com/roach88/yrpconv/internal/duel"
)

// msgBuilder assembles little-endian message bytes.
type msgBuilder []byte

func msg(t uint8) *msgBuilder {
	b := msgBuilder{t}
	return &b
}

func (b *msgBuilder) u8(v uint8) *msgBuilder {
	*b = append(*b, v)
	return b
}

func (b *msgBuilder) u16(v uint16) *msgBuilder {
	*b = binary.LittleEndian.AppendUint16(*b, v)
	return b
}

func (b *msgBuilder) u32(v uint32) *msgBuilder {
	*b = binary.LittleEndian.AppendUint32(*b, v)
	return b
}

func (b *msgBuilder) loc(con uint8, loc duel.Location, seq, pos uint32) *msgBuilder {
	return b.u8(con).u8(uint8(loc)).u32(seq).u32(pos)
}

func (b *msgBuilder) bytes() []byte { return *b }

// fakeContext records the calls an encoder makes.
type fakeContext struct {
	cards     map[duel.Place]bool
	materials map[duel.Place]bool
	left      map[duel.Place]duel.Place
	piles     map[duel.Location]int
	reason    uint32
	deferred  map[duel.Place][]duel.Place
	recorded  map[duel.Place]duel.Place
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		cards:     map[duel.Place]bool{},
		materials: map[duel.Place]bool{},
		left:      map[duel.Place]duel.Place{},
		piles:     map[duel.Location]int{},
		deferred:  map[duel.Place][]duel.Place{},
		recorded:  map[duel.Place]duel.Place{},
	}
}

func (c *fakeContext) PileSize(_ uint8, loc duel.Location) int { return c.piles[loc] }
func (c *fakeContext) HasCard(p duel.Place) bool { return c.cards[p] }
func (c *fakeContext) HasMaterials(p duel.Place) bool { return c.materials[p.Host()] }
func (c *fakeContext) MatchWinReason() uint32 { return c.reason }
func (c *fakeContext) SetMatchWinReason(r uint32) { c.reason = r }
func (c *fakeContext) RecordMaterialSource(left, holder duel.Place) { c.recorded[left] = holder }

func (c *fakeContext) MaterialSource(left duel.Place) (duel.Place, bool) {
	p, ok := c.left[left]
	return p, ok
}

func (c *fakeContext) DeferMaterial(material, host duel.Place) {
	c.deferred[host] = append(c.deferred[host], material)
}

func (c *fakeContext) TakeDeferredMaterials(host duel.Place) []duel.Place {
	out := c.deferred[host]
	delete(c.deferred, host)
	return out
}

func TestEncode_Events(t *testing.T) {
	enc := New()

	tests := []struct {
		name string
		buf  []byte
		want duel.Event
	}{
		{"new turn", msg(MsgNewTurn).u8(1).bytes(), duel.NewTurn{Player: 1}},
		{"new phase", msg(MsgNewPhase).u16(0x8).bytes(), duel.NewPhase{Phase: 0x8}},
		{"damage", msg(MsgDamage).u8(0).u32(800).bytes(), duel.LPChange{Player: 0, Type: duel.LPDamage, Amount: 800}},
		{"recover", msg(MsgRecover).u8(1).u32(500).bytes(), duel.LPChange{Player: 1, Type: duel.LPRecover, Amount: 500}},
		{"lp update", msg(MsgLPUpdate).u8(0).u32(4000).bytes(), duel.LPChange{Player: 0, Type: duel.LPBecome, Amount: 4000}},
		{"pay cost", msg(MsgPayLPCost).u8(1).u32(1000).bytes(), duel.LPChange{Player: 1, Type: duel.LPPay, Amount: 1000}},
		{
			"draw",
			msg(MsgDraw).u8(0).u32(2).u32(11).u32(0x1).u32(22).u32(0x8).bytes(),
			duel.Draw{Player: 0, Cards: []duel.DrawnCard{{Code: 11, Position: 0x1}, {Code: 22, Position: 0x8}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := enc.Encode(tt.buf)
			require.Equal(t, codec.StateOK, res.State)
			require.NoError(t, res.Err)
			require.NotNil(t, res.Msg)
			assert.Equal(t, tt.want, res.Msg.Event)
			assert.Empty(t, res.Msg.Queries)
			assert.Equal(t, len(tt.buf), res.BytesRead)
		})
	}
}

func TestEncode_Swallowed(t *testing.T) {
	enc := New()

	hint := msg(MsgHint).u8(1).u8(0).u32(3).u32(0).bytes()
	res := enc.Encode(hint)
	assert.Equal(t, codec.StateSwallowed, res.State)
	assert.Nil(t, res.Msg)
	assert.Equal(t, 11, res.BytesRead)

	res = enc.Encode(msg(MsgWaiting).bytes())
	assert.Equal(t, codec.StateSwallowed, res.State)
	assert.Equal(t, 1, res.BytesRead)
}

func TestEncode_SpecialAndUnknown(t *testing.T) {
	enc := New()
	for _, typ := range []uint8{MsgWin, MsgMove, MsgMatchKill, MsgShuffleDeck, MsgShuffleHand} {
		assert.Equal(t, codec.StateSpecial, enc.Encode([]byte{typ, 0, 0}).State)
	}
	assert.Equal(t, codec.StateUnknown, enc.Encode([]byte{255}).State)
	assert.Equal(t, codec.StateUnknown, enc.Encode(nil).State)
}

func TestEncode_ShortPayload(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read int
	}{
		{"new turn without player", msg(MsgNewTurn).bytes(), 1},
		{"damage without amount", msg(MsgDamage).u8(0).u16(1).bytes(), 2},
		{"draw without count", msg(MsgDraw).u8(0).bytes(), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().Encode(tt.buf)
			assert.Equal(t, codec.StateOK, res.State, "known type is not reported as unknown")
			assert.Nil(t, res.Msg)
			assert.Equal(t, tt.read, res.BytesRead)
			assert.ErrorIs(t, res.Err, ErrShortPayload)
		})
	}
}

func TestEncodeSpecial_ShortPayload(t *testing.T) {
	for _, buf := range [][]byte{
		msg(MsgMatchKill).u16(1).bytes(),
		msg(MsgWin).u8(1).bytes(),
		msg(MsgShuffleHand).bytes(),
		msg(MsgMove).u32(42).bytes(),
	} {
		ctx := newFakeContext()
		res := New().EncodeSpecial(ctx, buf)
		assert.Equal(t, codec.StateOK, res.State)
		assert.Nil(t, res.Msg)
		assert.ErrorIs(t, res.Err, ErrShortPayload)
		assert.LessOrEqual(t, res.BytesRead, len(buf))
		assert.Zero(t, ctx.reason)
		assert.Empty(t, ctx.deferred)
	}
}

func TestEncodeSpecial_ShuffleCountsPile(t *testing.T) {
	ctx := newFakeContext()
	ctx.piles[duel.LocDeck] = 37
	ctx.piles[duel.LocHand] = 5

	res := New().EncodeSpecial(ctx, msg(MsgShuffleDeck).u8(0).bytes())
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, 2, res.BytesRead)
	assert.Equal(t, duel.Shuffle{Player: 0, Loc: duel.LocDeck, Count: 37}, res.Msg.Event)

	res = New().EncodeSpecial(ctx, msg(MsgShuffleHand).u8(1).bytes())
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, duel.Shuffle{Player: 1, Loc: duel.LocHand, Count: 5}, res.Msg.Event)
}

func TestEncodeSpecial_WinUsesMatchReason(t *testing.T) {
	enc := New()
	ctx := newFakeContext()

	kill := msg(MsgMatchKill).u32(0x10).bytes()
	res := enc.EncodeSpecial(ctx, kill)
	require.Equal(t, codec.StateSwallowed, res.State)
	assert.Equal(t, 5, res.BytesRead)
	assert.Equal(t, uint32(0x10), ctx.reason)

	win := msg(MsgWin).u8(1).u8(4).bytes()
	res = enc.EncodeSpecial(ctx, win)
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, duel.Result{Winner: 1, Reason: 4, MatchWinReason: 0x10}, res.Msg.Event)
	assert.Equal(t, 3, res.BytesRead)
}

func moveMsg(code uint32, from, to [4]uint32, reason uint32) []byte {
	return msg(MsgMove).u32(code).
		loc(uint8(from[0]), duel.Location(from[1]), from[2], from[3]).
		loc(uint8(to[0]), duel.Location(to[1]), to[2], to[3]).
		u32(reason).bytes()
}

func TestEncodeSpecial_Move(t *testing.T) {
	ctx := newFakeContext()
	buf := moveMsg(42,
		[4]uint32{0, uint32(duel.LocHand), 1, 0x8},
		[4]uint32{0, uint32(duel.LocMonsterZone), 2, 0x1},
		0x20)

	res := New().EncodeSpecial(ctx, buf)
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, len(buf), res.BytesRead)
	assert.Equal(t, duel.CardMove{
		Code:     42,
		From:     duel.At(0, duel.LocHand, 1),
		To:       duel.At(0, duel.LocMonsterZone, 2),
		Position: 0x1,
		Reason:   0x20,
	}, res.Msg.Event)
}

func TestEncodeSpecial_DefersOverlayOnMissingHost(t *testing.T) {
	ctx := newFakeContext()
	enc := New()

	attach := moveMsg(7,
		[4]uint32{1, uint32(duel.LocGrave), 0, 0},
		[4]uint32{1, uint32(duel.LocMonsterZone | duel.LocOverlay), 3, 0},
		0)
	res := enc.EncodeSpecial(ctx, attach)
	require.Equal(t, codec.StateSwallowed, res.State)
	assert.Equal(t, len(attach), res.BytesRead)
	host := duel.At(1, duel.LocMonsterZone, 3)
	assert.Equal(t, map[duel.Place][]duel.Place{host: {duel.At(1, duel.LocGrave, 0)}}, ctx.deferred)

	// A card arriving elsewhere does not take the material.
	other := moveMsg(8,
		[4]uint32{1, uint32(duel.LocHand), 0, 0},
		[4]uint32{1, uint32(duel.LocMonsterZone), 1, 0x1},
		0)
	res = enc.EncodeSpecial(ctx, other)
	require.Equal(t, codec.StateOK, res.State)
	assert.Empty(t, res.Msg.Event.(duel.CardMove).Materials)
	assert.Len(t, ctx.deferred, 1)

	summon := moveMsg(9,
		[4]uint32{1, uint32(duel.LocExtra), 0, 0},
		[4]uint32{1, uint32(duel.LocMonsterZone), 3, 0x1},
		0)
	res = enc.EncodeSpecial(ctx, summon)
	require.Equal(t, codec.StateOK, res.State)
	move := res.Msg.Event.(duel.CardMove)
	assert.Equal(t, []duel.Place{duel.At(1, duel.LocGrave, 0)}, move.Materials)
	assert.Empty(t, ctx.deferred)

	// Drained once; the next summon carries nothing.
	res = enc.EncodeSpecial(ctx, summon)
	require.Equal(t, codec.StateOK, res.State)
	assert.Empty(t, res.Msg.Event.(duel.CardMove).Materials)
}

func TestEncodeSpecial_DetachResolvesHolder(t *testing.T) {
	ctx := newFakeContext()
	left := duel.At(0, duel.LocMonsterZone, 1)
	holder := duel.At(0, duel.LocMonsterZone, 4)
	ctx.left[left] = holder

	detach := moveMsg(0,
		[4]uint32{0, uint32(duel.LocOverlay | duel.LocMonsterZone), 1, 2},
		[4]uint32{0, uint32(duel.LocGrave), 0, 0},
		0)
	res := New().EncodeSpecial(ctx, detach)
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, holder.Material(2), res.Msg.Event.(duel.CardMove).From)
}

func TestEncodeSpecial_DetachWithoutHolder(t *testing.T) {
	detach := moveMsg(0,
		[4]uint32{0, uint32(duel.LocOverlay | duel.LocMonsterZone), 1, 0},
		[4]uint32{0, uint32(duel.LocGrave), 0, 0},
		0)
	res := New().EncodeSpecial(newFakeContext(), detach)
	assert.Equal(t, codec.StateUnknown, res.State)
	assert.ErrorIs(t, res.Err, ErrNoMaterialSource)
}

func TestEncodeSpecial_RecordsMaterialSource(t *testing.T) {
	ctx := newFakeContext()
	from := duel.At(0, duel.LocMonsterZone, 1)
	ctx.cards[from] = true
	ctx.materials[from] = true

	buf := moveMsg(5,
		[4]uint32{0, uint32(duel.LocMonsterZone), 1, 0x1},
		[4]uint32{0, uint32(duel.LocMonsterZone), 3, 0x1},
		0)
	res := New().EncodeSpecial(ctx, buf)
	require.Equal(t, codec.StateOK, res.State)
	assert.Equal(t, map[duel.Place]duel.Place{from: duel.At(0, duel.LocMonsterZone, 3)}, ctx.recorded)
}

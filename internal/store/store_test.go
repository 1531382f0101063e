package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/yrpconv/internal/transcode"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleResult(blocks int) *transcode.Result {
	return &transcode.Result{
		Data: make([]byte, 40),
		Stats: transcode.Stats{
			Messages:          blocks + 2,
			Blocks:            blocks,
			Swallowed:         2,
			DroppedQueries:    1,
			ClearedFields:     9,
			StoppedAtSentinel: true,
		},
	}
}

func TestOpen_SchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(path)
	require.NoError(t, err)

	v, err := st.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)
	require.NoError(t, st.Close())

	// Reopening an existing database is fine.
	st, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestRecordConversion_AssignsSeq(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	gen := NewFixedGenerator("conv-1", "conv-2")

	seq1, err := st.RecordConversion(ctx, NewConversion(gen.Generate(), "a.bin", []byte("first"), sampleResult(3)))
	require.NoError(t, err)
	seq2, err := st.RecordConversion(ctx, NewConversion(gen.Generate(), "b.bin", []byte("second"), sampleResult(5)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq1)
	assert.Equal(t, int64(2), seq2)

	got, err := st.ListConversions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "conv-1", got[0].ID)
	assert.Equal(t, int64(1), got[0].Seq)
	assert.Equal(t, "a.bin", got[0].Source)
	assert.Equal(t, InputDigest([]byte("first")), got[0].InputSHA256)
	assert.Equal(t, 5, got[0].InputBytes)
	assert.Equal(t, 40, got[0].OutputBytes)
	assert.Equal(t, 3, got[0].Stats.Blocks)
	assert.Equal(t, 5, got[0].Stats.Messages)
	assert.Equal(t, 9, got[0].Stats.ClearedFields)
	assert.True(t, got[0].Stats.StoppedAtSentinel)
	assert.Equal(t, "conv-2", got[1].ID)
}

func TestRecordConversion_DuplicateID(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	c := NewConversion("same", "a.bin", []byte("x"), sampleResult(1))

	_, err := st.RecordConversion(ctx, c)
	require.NoError(t, err)
	_, err = st.RecordConversion(ctx, c)
	assert.Error(t, err)

	got, err := st.ListConversions(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListConversions_Empty(t *testing.T) {
	st := openTestStore(t)
	got, err := st.ListConversions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindByInput(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	gen := NewFixedGenerator("c1", "c2", "c3")

	for _, in := range []string{"alpha", "beta", "alpha"} {
		_, err := st.RecordConversion(ctx, NewConversion(gen.Generate(), in+".bin", []byte(in), sampleResult(1)))
		require.NoError(t, err)
	}

	got, err := st.FindByInput(ctx, InputDigest([]byte("alpha")))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)

	none, err := st.FindByInput(ctx, InputDigest([]byte("gamma")))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInputDigest(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		InputDigest(nil))
}

func TestGenerators(t *testing.T) {
	id := UUIDv7Generator{}.Generate()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, UUIDv7Generator{}.Generate())

	gen := NewFixedGenerator("only")
	assert.Equal(t, "only", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(path)
	require.NoError(t, err)
	_, err = st.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = Open(path)
	assert.ErrorIs(t, err, ErrSchemaTooNew)
}

func TestOpen_JournalMode(t *testing.T) {
	st := openTestStore(t)
	var mode string
	require.NoError(t, st.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

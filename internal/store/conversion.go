package store

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/yrpconv/internal/transcode"
)

// Conversion is one recorded convert run.
type Conversion struct {
	ID          string          `json:"id"`
	Seq         int64           `json:"seq"`
	Source      string          `json:"source"`
	InputSHA256 string          `json:"input_sha256"`
	InputBytes  int             `json:"input_bytes"`
	OutputBytes int             `json:"output_bytes"`
	Stats       transcode.Stats `json:"stats"`
}

// NewConversion describes a successful transcode of input read from source.
func NewConversion(id, source string, input []byte, res *transcode.Result) Conversion {
	return Conversion{
		ID:          id,
		Source:      source,
		InputSHA256: InputDigest(input),
		InputBytes:  len(input),
		OutputBytes: len(res.Data),
		Stats:       res.Stats,
	}
}

// InputDigest returns the hex SHA-256 of input.
func InputDigest(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// IDGenerator produces conversion IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 conversion IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined IDs for testing.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
//
// Panics if all IDs have been consumed, to catch test misconfiguration.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

package store

import (
	"context"
	"fmt"
)

// RecordConversion appends c to the history and returns the seq it was
// assigned. c.Seq is ignored.
//
// Uses a transaction so the seq read and insert are atomic.
func (s *Store) RecordConversion(ctx context.Context, c Conversion) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("record conversion: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM conversions`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("record conversion: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversions
		(id, seq, source, input_sha256, input_bytes, output_bytes,
		 messages, blocks, swallowed, dropped_queries, cleared_fields, stopped_at_sentinel)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID,
		seq,
		c.Source,
		c.InputSHA256,
		c.InputBytes,
		c.OutputBytes,
		c.Stats.Messages,
		c.Stats.Blocks,
		c.Stats.Swallowed,
		c.Stats.DroppedQueries,
		c.Stats.ClearedFields,
		c.Stats.StoppedAtSentinel,
	)
	if err != nil {
		return 0, fmt.Errorf("record conversion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("record conversion: commit: %w", err)
	}
	return seq, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
)

const conversionColumns = `
	id, seq, source, input_sha256, input_bytes, output_bytes,
	messages, blocks, swallowed, dropped_queries, cleared_fields, stopped_at_sentinel`

// ListConversions returns the whole history in seq order.
//
// Returns an empty slice (not nil) if nothing was recorded.
func (s *Store) ListConversions(ctx context.Context) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+conversionColumns+`
		FROM conversions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	return scanConversions(rows)
}

// FindByInput returns earlier conversions of the input with the given
// SHA-256, in seq order.
func (s *Store) FindByInput(ctx context.Context, sha256Hex string) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+conversionColumns+`
		FROM conversions
		WHERE input_sha256 = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, sha256Hex)
	if err != nil {
		return nil, fmt.Errorf("query conversions by input: %w", err)
	}
	return scanConversions(rows)
}

func scanConversions(rows *sql.Rows) ([]Conversion, error) {
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(
			&c.ID,
			&c.Seq,
			&c.Source,
			&c.InputSHA256,
			&c.InputBytes,
			&c.OutputBytes,
			&c.Stats.Messages,
			&c.Stats.Blocks,
			&c.Stats.Swallowed,
			&c.Stats.DroppedQueries,
			&c.Stats.ClearedFields,
			&c.Stats.StoppedAtSentinel,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		conversions = append(conversions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return conversions, nil
}

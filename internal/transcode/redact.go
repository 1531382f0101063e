package transcode

import (
	"log/slog"

	"github.com/roach88/yrpconv/internal/board"
	"github.com/roach88/yrpconv/internal/duel"
)

// redactQueries filters msg.Queries in place. Queries on empty places are
// dropped (older streams reference cards that are already gone); the rest
// are applied to the board cache and lose every field that did not change.
func redactQueries(b *board.Board, msg *duel.Msg, stats *Stats) {
	if len(msg.Queries) == 0 {
		return
	}
	kept := msg.Queries[:0]
	for _, q := range msg.Queries {
		if !b.HasCard(q.Place) {
			slog.Debug("dropping query on empty place", "place", q.Place)
			stats.DroppedQueries++
			continue
		}
		hits := b.ApplyQuery(&q)
		stats.ClearedFields += q.Data.Clear(hits)
		kept = append(kept, q)
	}
	if len(kept) == 0 {
		kept = nil
	}
	msg.Queries = kept
}

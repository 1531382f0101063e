package board

import (
	"slices"

	"github.com/roach88/yrpconv/internal/duel"
)

// ApplyQuery stores every field present in q into the cache of the card at
// q.Place and returns the fields whose value did not change. A query on an
// empty place reports no hits.
func (b *Board) ApplyQuery(q *duel.Query) duel.HitMask {
	c := b.Card(q.Place)
	if c == nil {
		return 0
	}
	d, cache := &q.Data, &c.cache
	var hits duel.HitMask

	track(&hits, duel.HitOwner, &cache.Owner, d.Owner)
	track(&hits, duel.HitIsPublic, &cache.IsPublic, d.IsPublic)
	track(&hits, duel.HitIsHidden, &cache.IsHidden, d.IsHidden)
	track(&hits, duel.HitPosition, &cache.Position, d.Position)
	track(&hits, duel.HitCover, &cache.Cover, d.Cover)
	track(&hits, duel.HitStatus, &cache.Status, d.Status)
	track(&hits, duel.HitCode, &cache.Code, d.Code)
	track(&hits, duel.HitAlias, &cache.Alias, d.Alias)
	track(&hits, duel.HitType, &cache.Type, d.Type)
	track(&hits, duel.HitLevel, &cache.Level, d.Level)
	track(&hits, duel.HitXyzRank, &cache.XyzRank, d.XyzRank)
	track(&hits, duel.HitAttribute, &cache.Attribute, d.Attribute)
	track(&hits, duel.HitRace, &cache.Race, d.Race)
	track(&hits, duel.HitBaseAtk, &cache.BaseAtk, d.BaseAtk)
	track(&hits, duel.HitAtk, &cache.Atk, d.Atk)
	track(&hits, duel.HitBaseDef, &cache.BaseDef, d.BaseDef)
	track(&hits, duel.HitDef, &cache.Def, d.Def)
	track(&hits, duel.HitPendLScale, &cache.PendLScale, d.PendLScale)
	track(&hits, duel.HitPendRScale, &cache.PendRScale, d.PendRScale)
	track(&hits, duel.HitLinkRate, &cache.LinkRate, d.LinkRate)
	track(&hits, duel.HitLinkArrow, &cache.LinkArrow, d.LinkArrow)
	track(&hits, duel.HitEquipped, &cache.Equipped, d.Equipped)

	if d.Counters != nil {
		if cache.Counters != nil && slices.Equal(cache.Counters.Values, d.Counters.Values) {
			hits |= duel.HitCounters
		}
		cache.Counters = &duel.Counters{Values: slices.Clone(d.Counters.Values)}
	}
	if d.Relations != nil {
		if cache.Relations != nil && slices.Equal(cache.Relations.Values, d.Relations.Values) {
			hits |= duel.HitRelations
		}
		cache.Relations = &duel.Places{Values: slices.Clone(d.Relations.Values)}
	}

	if d.Code != nil {
		c.Code = *d.Code
	}
	if d.Position != nil {
		c.Position = *d.Position
	}
	return hits
}

// track compares fresh with *cached, records a hit on equality, and stores a
// copy of fresh. Absent fields leave the cache untouched.
func track[T comparable](hits *duel.HitMask, bit duel.HitMask, cached **T, fresh *T) {
	if fresh == nil {
		return
	}
	if *cached != nil && **cached == *fresh {
		*hits |= bit
	}
	v := *fresh
	*cached = &v
}

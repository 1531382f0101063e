package ocgcore

import (
	"github.com/roach88/yrpconv/internal/duel"
)

// readUpdateData reads [u8 con][u8 loc][u32 count] followed by count
// length-prefixed query records, one per sequence. Empty records are slots
// without a card and produce no query.
func readUpdateData(r *reader) []duel.Query {
	con := r.u8()
	loc := duel.Location(r.u8())
	n := r.u32()
	var out []duel.Query
	for seq := uint32(0); seq < n && r.err == nil; seq++ {
		size := r.u32()
		if size == 0 {
			continue
		}
		rec := r.take(int(size))
		if rec == nil {
			break
		}
		data, err := readQueryData(newReader(rec))
		if err != nil {
			r.err = err
			break
		}
		out = append(out, duel.Query{Place: duel.At(con, loc, seq), Data: data})
	}
	return out
}

// readUpdateCard reads [u8 con][u8 loc][u32 seq][u32 len] and one query
// record.
func readUpdateCard(r *reader) []duel.Query {
	con := r.u8()
	loc := duel.Location(r.u8())
	seq := r.u32()
	size := r.u32()
	rec := r.take(int(size))
	if rec == nil {
		return nil
	}
	data, err := readQueryData(newReader(rec))
	if err != nil {
		r.err = err
		return nil
	}
	return []duel.Query{{Place: duel.At(con, loc, seq), Data: data}}
}

// readQueryData reads [u16 size][u32 flag][size-4 bytes] fields until the
// end flag. Unknown flags are skipped.
func readQueryData(r *reader) (duel.QueryData, error) {
	var d duel.QueryData
	for r.err == nil && r.remaining() > 0 {
		size := int(r.u16())
		flag := r.u32()
		if flag == queryEnd {
			break
		}
		body := r.take(size - 4)
		if body == nil {
			break
		}
		if err := readQueryField(&d, flag, newReader(body)); err != nil {
			return d, err
		}
	}
	return d, r.err
}

func readQueryField(d *duel.QueryData, flag uint32, f *reader) error {
	switch flag {
	case queryCode:
		d.Code = duel.Ptr(f.u32())
	case queryPosition:
		d.Position = duel.Ptr(f.u32())
	case queryAlias:
		d.Alias = duel.Ptr(f.u32())
	case queryType:
		d.Type = duel.Ptr(f.u32())
	case queryLevel:
		d.Level = duel.Ptr(f.u32())
	case queryRank:
		d.XyzRank = duel.Ptr(f.u32())
	case queryAttribute:
		d.Attribute = duel.Ptr(f.u32())
	case queryRace:
		d.Race = duel.Ptr(f.u64())
	case queryAttack:
		d.Atk = duel.Ptr(f.i32())
	case queryDefense:
		d.Def = duel.Ptr(f.i32())
	case queryBaseAttack:
		d.BaseAtk = duel.Ptr(f.i32())
	case queryBaseDefense:
		d.BaseDef = duel.Ptr(f.i32())
	case queryEquipCard:
		p, _ := readLocInfo(f)
		d.Equipped = &p
	case queryTargetCard:
		n := f.u32()
		places := &duel.Places{}
		for i := uint32(0); i < n && f.err == nil; i++ {
			p, _ := readLocInfo(f)
			places.Values = append(places.Values, p)
		}
		d.Relations = places
	case queryCounters:
		n := f.u32()
		counters := &duel.Counters{}
		for i := uint32(0); i < n && f.err == nil; i++ {
			packed := f.u32()
			counters.Values = append(counters.Values, duel.Counter{
				Type:  packed & 0xffff,
				Count: packed >> 16,
			})
		}
		d.Counters = counters
	case queryOwner:
		d.Owner = duel.Ptr(f.u8())
	case queryStatus:
		d.Status = duel.Ptr(f.u32())
	case queryIsPublic:
		d.IsPublic = duel.Ptr(f.u8() != 0)
	case queryLScale:
		d.PendLScale = duel.Ptr(f.u32())
	case queryRScale:
		d.PendRScale = duel.Ptr(f.u32())
	case queryLink:
		d.LinkRate = duel.Ptr(f.u32())
		d.LinkArrow = duel.Ptr(f.u32())
	case queryIsHidden:
		d.IsHidden = duel.Ptr(f.u8() != 0)
	case queryCover:
		d.Cover = duel.Ptr(f.u32())
	}
	return f.err
}

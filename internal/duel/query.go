package duel

// Query is a snapshot of the visible fields of the card at Place.
type Query struct {
	Place Place     `json:"place"`
	Data  QueryData `json:"data"`
}

// Counter is one counter type placed on a card.
type Counter struct {
	Type  uint32 `json:"type"`
	Count uint32 `json:"count"`
}

// QueryData holds the optional fields of a query. A nil field was not
// reported, or was cleared because it matched the cached value.
type QueryData struct {
	Owner      *uint8    `json:"owner,omitempty"`
	IsPublic   *bool     `json:"is_public,omitempty"`
	IsHidden   *bool     `json:"is_hidden,omitempty"`
	Position   *uint32   `json:"position,omitempty"`
	Cover      *uint32   `json:"cover,omitempty"`
	Status     *uint32   `json:"status,omitempty"`
	Code       *uint32   `json:"code,omitempty"`
	Alias      *uint32   `json:"alias,omitempty"`
	Type       *uint32   `json:"type,omitempty"`
	Level      *uint32   `json:"level,omitempty"`
	XyzRank    *uint32   `json:"xyz_rank,omitempty"`
	Attribute  *uint32   `json:"attribute,omitempty"`
	Race       *uint64   `json:"race,omitempty"`
	BaseAtk    *int32    `json:"base_atk,omitempty"`
	Atk        *int32    `json:"atk,omitempty"`
	BaseDef    *int32    `json:"base_def,omitempty"`
	Def        *int32    `json:"def,omitempty"`
	PendLScale *uint32   `json:"pend_l_scale,omitempty"`
	PendRScale *uint32   `json:"pend_r_scale,omitempty"`
	LinkRate   *uint32   `json:"link_rate,omitempty"`
	LinkArrow  *uint32   `json:"link_arrow,omitempty"`
	Counters   *Counters `json:"counters,omitempty"`
	Equipped   *Place    `json:"equipped,omitempty"`
	Relations  *Places   `json:"relations,omitempty"`
}

// Counters wraps the counter list so that an empty list can be present.
type Counters struct {
	Values []Counter `json:"values"`
}

// Places wraps a place list so that an empty list can be present.
type Places struct {
	Values []Place `json:"values"`
}

// Ptr returns a pointer to v. Used to fill QueryData fields.
func Ptr[T any](v T) *T {
	return &v
}

// HitMask has one bit per QueryData field, set when the field's fresh value
// equals the cached one.
type HitMask uint32

const (
	HitOwner HitMask = 1 << iota
	HitIsPublic
	HitIsHidden
	HitPosition
	HitCover
	HitStatus
	HitCode
	HitAlias
	HitType
	HitLevel
	HitXyzRank
	HitAttribute
	HitRace
	HitBaseAtk
	HitAtk
	HitBaseDef
	HitDef
	HitPendLScale
	HitPendRScale
	HitLinkRate
	HitLinkArrow
	HitCounters
	HitEquipped
	HitRelations

	// QueryFieldCount is the number of QueryData fields.
	QueryFieldCount = iota
)

// Has reports whether every bit of f is set in m.
func (m HitMask) Has(f HitMask) bool {
	return m&f == f && f != 0
}

// Clear sets every field whose bit is set in mask to nil and returns how
// many fields were actually cleared.
func (d *QueryData) Clear(mask HitMask) int {
	n := 0
	drop := func(bit HitMask, present bool, reset func()) {
		if present && mask.Has(bit) {
			reset()
			n++
		}
	}
	drop(HitOwner, d.Owner != nil, func() { d.Owner = nil })
	drop(HitIsPublic, d.IsPublic != nil, func() { d.IsPublic = nil })
	drop(HitIsHidden, d.IsHidden != nil, func() { d.IsHidden = nil })
	drop(HitPosition, d.Position != nil, func() { d.Position = nil })
	drop(HitCover, d.Cover != nil, func() { d.Cover = nil })
	drop(HitStatus, d.Status != nil, func() { d.Status = nil })
	drop(HitCode, d.Code != nil, func() { d.Code = nil })
	drop(HitAlias, d.Alias != nil, func() { d.Alias = nil })
	drop(HitType, d.Type != nil, func() { d.Type = nil })
	drop(HitLevel, d.Level != nil, func() { d.Level = nil })
	drop(HitXyzRank, d.XyzRank != nil, func() { d.XyzRank = nil })
	drop(HitAttribute, d.Attribute != nil, func() { d.Attribute = nil })
	drop(HitRace, d.Race != nil, func() { d.Race = nil })
	drop(HitBaseAtk, d.BaseAtk != nil, func() { d.BaseAtk = nil })
	drop(HitAtk, d.Atk != nil, func() { d.Atk = nil })
	drop(HitBaseDef, d.BaseDef != nil, func() { d.BaseDef = nil })
	drop(HitDef, d.Def != nil, func() { d.Def = nil })
	drop(HitPendLScale, d.PendLScale != nil, func() { d.PendLScale = nil })
	drop(HitPendRScale, d.PendRScale != nil, func() { d.PendRScale = nil })
	drop(HitLinkRate, d.LinkRate != nil, func() { d.LinkRate = nil })
	drop(HitLinkArrow, d.LinkArrow != nil, func() { d.LinkArrow = nil })
	drop(HitCounters, d.Counters != nil, func() { d.Counters = nil })
	drop(HitEquipped, d.Equipped != nil, func() { d.Equipped = nil })
	drop(HitRelations, d.Relations != nil, func() { d.Relations = nil })
	return n
}

// Empty reports whether no field is present.
func (d *QueryData) Empty() bool {
	return *d == QueryData{}
}

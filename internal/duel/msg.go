package duel

// Msg is one typed message produced by the encoder. A nil Event marks a
// message that does not change the board layout.
type Msg struct {
	Event   Event   `json:"event,omitempty"`
	Queries []Query `json:"queries,omitempty"`
}

// IsEvent reports whether the message carries a board event.
func (m *Msg) IsEvent() bool {
	return m != nil && m.Event != nil
}

// Event is a board-changing message variant. The set is closed.
type Event interface {
	Kind() EventKind
	isEvent()
}

// EventKind names an Event variant.
type EventKind string

const (
	KindNewTurn  EventKind = "new_turn"
	KindNewPhase EventKind = "new_phase"
	KindDraw     EventKind = "draw"
	KindCardMove EventKind = "card_move"
	KindShuffle  EventKind = "shuffle"
	KindLPChange EventKind = "lp_change"
	KindResult   EventKind = "result"
)

// NewTurn starts the turn of Player.
type NewTurn struct {
	Player uint8 `json:"player"`
}

// NewPhase enters Phase of the current turn.
type NewPhase struct {
	Phase uint32 `json:"phase"`
}

// DrawnCard is one card taken from the top of the deck.
type DrawnCard struct {
	Code     uint32 `json:"code"`
	Position uint32 `json:"position"`
}

// Draw moves len(Cards) cards from the top of Player's deck to the hand.
type Draw struct {
	Player uint8       `json:"player"`
	Cards  []DrawnCard `json:"cards"`
}

// CardMove moves one card. A zero From.Loc creates the card; a zero To.Loc
// removes it from play. Materials lists cards attached to the moved card once
// it reaches To, in order.
type CardMove struct {
	Code      uint32  `json:"code"`
	From      Place   `json:"from"`
	To        Place   `json:"to"`
	Position  uint32  `json:"position"`
	Reason    uint32  `json:"reason"`
	Materials []Place `json:"materials,omitempty"`
}

// Shuffle randomizes the order of Player's cards at Loc. Count is the
// number of cards that were there when the shuffle happened.
type Shuffle struct {
	Player uint8    `json:"player"`
	Loc    Location `json:"loc"`
	Count  uint32   `json:"count"`
}

// LPChangeType distinguishes the life point messages.
type LPChangeType uint8

const (
	LPDamage LPChangeType = iota
	LPRecover
	LPBecome
	LPPay
)

// LPChange alters Player's life points.
type LPChange struct {
	Player uint8        `json:"player"`
	Type   LPChangeType `json:"type"`
	Amount uint32       `json:"amount"`
}

// Result ends the duel. MatchWinReason is non-zero when a match-kill card
// decided the whole match.
type Result struct {
	Winner         uint8  `json:"winner"`
	Reason         uint8  `json:"reason"`
	MatchWinReason uint32 `json:"match_win_reason,omitempty"`
}

func (NewTurn) Kind() EventKind  { return KindNewTurn }
func (NewPhase) Kind() EventKind { return KindNewPhase }
func (Draw) Kind() EventKind     { return KindDraw }
func (CardMove) Kind() EventKind { return KindCardMove }
func (Shuffle) Kind() EventKind  { return KindShuffle }
func (LPChange) Kind() EventKind { return KindLPChange }
func (Result) Kind() EventKind   { return KindResult }

func (NewTurn) isEvent()  {}
func (NewPhase) isEvent() {}
func (Draw) isEvent()     {}
func (CardMove) isEvent() {}
func (Shuffle) isEvent()  {}
func (LPChange) isEvent() {}
func (Result) isEvent()   {}

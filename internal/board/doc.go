// Package board tracks card placement and the per-card query cache needed
// to redact replay queries.
//
// The model is small: piles (deck, hand, grave, banished, extra)
// are ordered stacks indexed by sequence, field locations are fixed slots, and
// materials hang off the card they are attached to. The board never validates
// game rules; moves from an empty place create a card and moves to an
// unknown host drop it, so streams from older cores still process.
//
// ApplyEvent is the only mutator of layout. ApplyQuery only touches the cache.
// Callers apply a message's event before its queries.
package board

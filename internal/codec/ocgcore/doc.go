// Package ocgcore encodes the duel core's binary messages into typed
// duel messages.
//
// Only the messages the replay board needs are understood: turn and phase
// changes, draws, moves, shuffles, life point changes, results, card queries
// and the bookkeeping messages that are consumed without output. Everything
// else reports codec.StateUnknown. A known message whose payload ends early
// reports codec.StateOK with the error set and BytesRead short of the
// payload, so the framer sees a size disagreement rather than an unknown
// type.
//
// All integers are little-endian. A location record is
// [u8 controller][u8 location][u32 sequence][u32 position]; for overlay
// locations the position holds the material index.
package ocgcore

// Package store keeps the history of convert runs in SQLite.
//
// The history is append-only: each successful conversion adds one row and
// nothing is updated. Rows carry a seq assigned on insert and every listing
// orders by seq, then id, so output is stable across runs.
//
// Connections open in WAL mode with synchronous=NORMAL and a 5 second busy
// timeout.
package store

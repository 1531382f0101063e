// Package duel provides the typed message model shared by the encoder, the
// board tracker and the replay log.
//
// This package contains type definitions only. All other internal packages
// import duel; duel imports nothing internal.
//
// Key design constraints:
//   - Place is comparable and used directly as a map key
//   - Optional query fields are pointers; nil means "absent"
//   - JSON tags use snake_case (used by replay dumps)
package duel

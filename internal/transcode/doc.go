// Package transcode converts a legacy core message stream into a replay log.
//
// ARCHITECTURE:
//
// One call to Transcode owns everything it touches: the cursor over the
// caller's buffer, a fresh capability context (board, deferred materials,
// left-material map, match win reason) and the replay log. Nothing is shared
// between calls and nothing runs concurrently.
//
// Per message:
//  1. The framer reads the 5-byte legacy header and rebuilds the
//     [type][payload] view the encoder expects in a scratch buffer.
//  2. The encoder decodes it, consulting the context for special messages.
//  3. The consumed size is checked against the header.
//  4. The typed message is appended to the log, its event is applied to the
//     board, then its queries are dropped or redacted against the cache.
//
// The loop ends when the buffer is consumed or the old-format sentinel is
// read. Every failure is returned as an *Error carrying its Class; no
// partial output is produced after a failure.
package transcode

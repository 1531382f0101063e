// Package replay assembles the append-only replay log and its binary
// encoding.
//
// The encoding is the protobuf wire format of replaypb.Replay, defined in
// replaypb/replay.proto. Marshal maps blocks onto the generated types and
// Decode maps them back; both go through google.golang.org/protobuf/proto.
//
// Event scalars follow proto3 rules and are omitted when zero. QueryData
// fields are proto3 optional, so a reported zero survives and an absent
// field stays absent.
package replay

// Package replaypb holds the generated protobuf types of the replay log
// encoding. Edit replay.proto and regenerate; do not edit replay.pb.go.
package replaypb

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative internal/replay/replaypb/replay.proto

package transcode

import (
	"errors"
	"fmt"
)

// Class categorizes transcode failures. Each class maps to a distinct exit
// status in the CLI.
type Class string

const (
	// ClassTruncated indicates fewer bytes remain than the next header or
	// payload needs.
	ClassTruncated Class = "TRUNCATED_STREAM"

	// ClassSpecialDecode indicates the context-aware decode neither produced
	// a message nor swallowed it.
	ClassSpecialDecode Class = "SPECIAL_DECODE_FAILURE"

	// ClassUnknownType indicates the encoder does not recognize the message
	// type.
	ClassUnknownType Class = "UNKNOWN_MESSAGE_TYPE"

	// ClassMisaligned indicates the encoder consumed a different number of
	// bytes than the header declared, or stopped early inside a message it
	// recognized.
	ClassMisaligned Class = "MISALIGNED_CURSOR"
)

// Error is a fatal transcode failure.
type Error struct {
	Class   Class
	Message string

	// Offset is the position of the failing message header in the input.
	Offset int

	// MsgType is the type byte of the failing message, when one was read.
	MsgType uint8

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s (offset=%d)", e.Class, e.Message, e.Offset)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClassOf returns the class of err if it wraps an *Error.
func ClassOf(err error) (Class, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Class, true
	}
	return "", false
}

// IsClass reports whether err wraps an *Error of class c.
// Uses errors.As to handle wrapped errors.
func IsClass(err error, c Class) bool {
	got, ok := ClassOf(err)
	return ok && got == c
}

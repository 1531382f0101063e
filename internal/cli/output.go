package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/yrpconv/internal/transcode"
)

// Process exit statuses. The transcode failure classes each get their own
// status so batch scripts can tell a damaged stream from an unsupported one.
const (
	ExitSuccess        = 0
	ExitFailure        = 1
	ExitCommandError   = 2 // bad arguments, unreadable files, database errors
	ExitTruncated      = 6
	ExitSpecialDecode  = 7
	ExitUnknownMessage = 8
	ExitMisaligned     = 9
)

var classExitCodes = map[transcode.Class]int{
	transcode.ClassTruncated:     ExitTruncated,
	transcode.ClassSpecialDecode: ExitSpecialDecode,
	transcode.ClassUnknownType:   ExitUnknownMessage,
	transcode.ClassMisaligned:    ExitMisaligned,
}

// TranscodeExitCode maps a transcode failure to its exit status.
// Errors without a class map to ExitFailure.
func TranscodeExitCode(err error) int {
	class, ok := transcode.ClassOf(err)
	if !ok {
		return ExitFailure
	}
	if code, ok := classExitCodes[class]; ok {
		return code
	}
	return ExitFailure
}

// ExitError carries the process exit status out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit status to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode returns the status carried by err, or ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as text or a JSON envelope.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics; falls back to Writer
	Verbose   bool
}

// CLIResponse is the JSON envelope for every command result.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError describes a failed command. Code is a transcode class name for
// conversion failures.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success reports data. Text mode prints it with its default format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format != "json" {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	}
	return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
}

// Error reports a failure.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog writes a diagnostic line when verbose output is on.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if f.Verbose {
		fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
	}
}

// GetErrWriter returns the diagnostics writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// newPrinter formats counts with digit grouping.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func sortedKeys(m map[string]int) []string {
	return slices.Sorted(maps.Keys(m))
}

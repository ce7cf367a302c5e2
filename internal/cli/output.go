package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/braglog/internal/entry"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution, including an empty result
	ExitFailure      = 1 // Runtime failure (store could not be opened or read)
	ExitCommandError = 2 // Invalid usage (conflicting options, unparseable dates, bad flags)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
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

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Entry writes one log entry: "YYYY-MM-DD: message" in text mode, one JSON
// object per line in json mode.
func (f *OutputFormatter) Entry(e entry.LogEntry) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(e)
	}
	_, err := fmt.Fprintln(f.Writer, e.String())
	return err
}

// Value writes a scalar result such as a path. In json mode it is wrapped
// in an object under key.
func (f *OutputFormatter) Value(key string, v any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(map[string]any{key: v})
	}
	_, err := fmt.Fprintln(f.Writer, v)
	return err
}

package store

import (
	"errors"
	"fmt"
)

// ErrEmptyMessage is returned by Create for a blank message.
var ErrEmptyMessage = errors.New("message must not be empty")

// EntryStoreError reports a failure of the underlying database.
// Callers treat it as fatal for the current command; nothing is retried.
type EntryStoreError struct {
	// Op names the store operation that failed, e.g. "open" or "query entries".
	Op  string
	Err error
}

func (e *EntryStoreError) Error() string {
	return fmt.Sprintf("entry store: %s: %v", e.Op, e.Err)
}

func (e *EntryStoreError) Unwrap() error {
	return e.Err
}

// IsStoreError returns true if err is or wraps an *EntryStoreError.
func IsStoreError(err error) bool {
	var se *EntryStoreError
	return errors.As(err, &se)
}

func storeErr(op string, err error) error {
	return &EntryStoreError{Op: op, Err: err}
}

package filter

import (
	"errors"
	"fmt"
)

// MutuallyExclusiveOptionError reports two options that cannot be combined.
type MutuallyExclusiveOptionError struct {
	Option      string
	Conflicting string
}

// Error keeps the "not allowed with" phrasing; scripts match on it.
func (e *MutuallyExclusiveOptionError) Error() string {
	return fmt.Sprintf("option --%s is not allowed with option --%s", e.Option, e.Conflicting)
}

// InvalidDateError reports a date-like option whose value could not be
// resolved.
type InvalidDateError struct {
	Option string
	Value  string
	Err    error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid value for --%s: %q is not a date (use YYYY-MM-DD, today, yesterday or \"N days ago\")", e.Option, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether err came from rejecting the user's options,
// as opposed to a failure further down.
func IsUsageError(err error) bool {
	var mx *MutuallyExclusiveOptionError
	if errors.As(err, &mx) {
		return true
	}
	var inv *InvalidDateError
	return errors.As(err, &inv)
}

// Package dates turns the date tokens users type on the command line into
// calendar dates.
//
// Two grammars are accepted: absolute YYYY-MM-DD dates, and the relative
// phrases "today", "yesterday" and "N day(s) ago". Relative phrases are
// resolved against a reference date supplied by the caller, never against the
// wall clock, so Resolve is a pure function.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/braglog/internal/entry"
)

// InvalidDateError reports a token that matches neither grammar.
type InvalidDateError struct {
	Token string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD, \"today\", \"yesterday\" or \"N days ago\"", e.Token)
}

var daysAgoPattern = regexp.MustCompile(`^(\d+) days? ago$`)

// Resolve parses token into a calendar date, using reference as "today".
func Resolve(token string, reference entry.Date) (entry.Date, error) {
	if d, err := entry.ParseDate(strings.TrimSpace(token)); err == nil {
		return d, nil
	}

	phrase := normalize(token)
	switch phrase {
	case "today":
		return reference, nil
	case "yesterday":
		return reference.AddDays(-1), nil
	}

	m := daysAgoPattern.FindStringSubmatch(phrase)
	if m == nil {
		return entry.Date{}, &InvalidDateError{Token: token}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only overflow gets here; the pattern guarantees digits.
		return entry.Date{}, &InvalidDateError{Token: token}
	}
	return reference.AddDays(-n), nil
}

// normalize case-folds s and collapses runs of whitespace to single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), " ")
}

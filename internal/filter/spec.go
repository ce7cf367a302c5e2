package filter

import (
	"strings"

	"github.com/roach88/braglog/internal/dates"
	"github.com/roach88/braglog/internal/entry"
)

// Option is a raw command-line value together with whether it was given.
type Option struct {
	Value string
	Set   bool
}

// Given returns a set Option holding v.
func Given(v string) Option {
	return Option{Value: v, Set: true}
}

// Options is the unvalidated filter intent collected by the CLI.
type Options struct {
	On       Option
	Since    Option
	Until    Option
	Contains Option
}

// Spec is a validated filter. Nil date fields and HasContains=false mean the
// condition is absent. All present conditions must hold for an entry to match.
type Spec struct {
	On          *entry.Date
	Since       *entry.Date
	Until       *entry.Date
	Contains    string
	HasContains bool
}

// Build validates opts and resolves its dates against today.
func Build(opts Options, today entry.Date) (Spec, error) {
	if opts.On.Set {
		if opts.Since.Set {
			return Spec{}, &MutuallyExclusiveOptionError{Option: "on", Conflicting: "since"}
		}
		if opts.Until.Set {
			return Spec{}, &MutuallyExclusiveOptionError{Option: "on", Conflicting: "until"}
		}
	}

	var spec Spec
	var err error
	if spec.On, err = resolveOption("on", opts.On, today); err != nil {
		return Spec{}, err
	}
	if spec.Since, err = resolveOption("since", opts.Since, today); err != nil {
		return Spec{}, err
	}
	if spec.Until, err = resolveOption("until", opts.Until, today); err != nil {
		return Spec{}, err
	}

	if opts.Contains.Set {
		spec.Contains = opts.Contains.Value
		spec.HasContains = true
	}

	return spec, nil
}

func resolveOption(name string, opt Option, today entry.Date) (*entry.Date, error) {
	if !opt.Set {
		return nil, nil
	}
	d, err := dates.Resolve(opt.Value, today)
	if err != nil {
		return nil, &InvalidDateError{Option: name, Value: opt.Value, Err: err}
	}
	return &d, nil
}

// IsEmpty reports whether s has no conditions at all.
func (s Spec) IsEmpty() bool {
	return s.On == nil && s.Since == nil && s.Until == nil && !s.HasContains
}

// Matches reports whether e satisfies every present condition of s.
//
// The query package compiles the same predicate to SQL; Matches is the
// in-memory form of it.
func (s Spec) Matches(e entry.LogEntry) bool {
	if s.On != nil && e.LogDate != *s.On {
		return false
	}
	if s.Since != nil && e.LogDate.Before(*s.Since) {
		return false
	}
	if s.Until != nil && e.LogDate.After(*s.Until) {
		return false
	}
	if s.HasContains && !strings.Contains(e.Message, s.Contains) {
		return false
	}
	return true
}

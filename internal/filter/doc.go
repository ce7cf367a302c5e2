// Package filter turns the filter options given to "braglog show" into a
// validated Spec.
//
// Validation happens once, in Build, before any store access:
//   - --on is mutually exclusive with --since and with --until; the
//     conflict is reported before any date is parsed.
//   - every date-like option must resolve through the dates package.
//   - --contains is passed through untouched.
//
// Option presence is tracked explicitly. An empty --contains is a filter
// that matches every entry, which is not the same thing as no filter.
package filter

// Package query executes a validated filter.Spec against the entry store.
//
// Compile turns a Spec into a parameterized SELECT: every present
// condition becomes one ANDed WHERE term, values are never interpolated, and
// the statement always ends in ORDER BY log_date ASC, id ASC. Because id is
// the insertion marker, entries that share a date come back in the order
// they were added.
//
//	on       → log_date = ?
//	since    → log_date >= ?
//	until    → log_date <= ?
//	contains → instr(message, ?) > 0   (case-sensitive, unlike LIKE)
//
// Execute runs the statement and returns a lazy, single-pass sequence. The
// package holds no state, so concurrent calls are independent.
package query

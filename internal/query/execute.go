package query

import (
	"context"
	"iter"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/braglog/internal/entry"
	"github.com/roach88/braglog/internal/filter"
)

// EntryStore is the read side of the store that Execute needs.
// *store.Store implements it.
type EntryStore interface {
	Entries(ctx context.Context, q sq.Sqlizer) iter.Seq2[entry.LogEntry, error]
}

// Execute returns the entries matching spec, ordered by (log_date, id).
//
// The sequence is lazy and single-pass. A store failure is yielded as the
// final element; it is not retried.
func Execute(ctx context.Context, spec filter.Spec, st EntryStore) iter.Seq2[entry.LogEntry, error] {
	q := Compile(spec)
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		if sql, args, err := q.ToSql(); err == nil {
			slog.DebugContext(ctx, "executing query", "sql", sql, "args", args)
		}
	}
	return st.Entries(ctx, q)
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[entry.LogEntry, error]) ([]entry.LogEntry, error) {
	entries := []entry.LogEntry{}
	for e, err := range seq {
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

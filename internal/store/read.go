package store

import (
	"context"
	"iter"

	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/braglog/internal/entry"
)

// Entries runs q and yields its rows as entries, one at a time.
//
// q must select Columns, in that order, from Table; the query package builds
// such statements. The sequence is single-pass. An error is yielded at most
// once, as the final element, and is always an *EntryStoreError.
func (s *Store) Entries(ctx context.Context, q sq.Sqlizer) iter.Seq2[entry.LogEntry, error] {
	return func(yield func(entry.LogEntry, error) bool) {
		query, args, err := q.ToSql()
		if err != nil {
			yield(entry.LogEntry{}, storeErr("build query", err))
			return
		}

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(entry.LogEntry{}, storeErr("query entries", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var e entry.LogEntry
			if err := rows.Scan(&e.ID, &e.Message, &e.LogDate); err != nil {
				yield(entry.LogEntry{}, storeErr("scan entry", err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(entry.LogEntry{}, storeErr("iterate entries", err))
		}
	}
}

// All returns every entry in insertion order.
func (s *Store) All(ctx context.Context) ([]entry.LogEntry, error) {
	q := s.builder.Select(Columns...).From(Table).OrderBy("id ASC")

	entries := []entry.LogEntry{}
	for e, err := range s.Entries(ctx, q) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

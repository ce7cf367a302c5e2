package store

import (
	"context"
	"log/slog"
	"strings"

	"github.com/roach88/braglog/internal/entry"
)

// Create appends an entry and returns it with its assigned id.
// The message is stored as given; a message that is empty after trimming
// whitespace is rejected with ErrEmptyMessage.
func (s *Store) Create(ctx context.Context, message string, logDate entry.Date) (entry.LogEntry, error) {
	if strings.TrimSpace(message) == "" {
		return entry.LogEntry{}, ErrEmptyMessage
	}

	query, args, err := s.builder.
		Insert(Table).
		Columns("message", "log_date").
		Values(message, logDate).
		ToSql()
	if err != nil {
		return entry.LogEntry{}, storeErr("create entry", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return entry.LogEntry{}, storeErr("create entry", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return entry.LogEntry{}, storeErr("create entry", err)
	}

	slog.Debug("entry created", "id", id, "log_date", logDate.String())

	return entry.LogEntry{ID: id, Message: message, LogDate: logDate}, nil
}

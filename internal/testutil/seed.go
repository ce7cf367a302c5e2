package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/braglog/internal/entry"
	"github.com/roach88/braglog/internal/store"
)

// Seed is an entry to insert before a test runs.
type Seed struct {
	Message string
	Date    entry.Date
}

// OpenStore opens a fresh store in t.TempDir and closes it on cleanup.
// It returns the store and the database path.
func OpenStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "braglog.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, path
}

// SeedEntries inserts seeds in order and returns the created entries.
func SeedEntries(t *testing.T, st *store.Store, seeds ...Seed) []entry.LogEntry {
	t.Helper()
	created := make([]entry.LogEntry, 0, len(seeds))
	for _, s := range seeds {
		e, err := st.Create(context.Background(), s.Message, s.Date)
		require.NoError(t, err)
		created = append(created, e)
	}
	return created
}

// SeedDatabase creates a database file at a temp path, inserts seeds, closes
// it, and returns the path. Used by CLI tests that open the store themselves.
func SeedDatabase(t *testing.T, seeds ...Seed) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "braglog.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	SeedEntries(t, st, seeds...)
	require.NoError(t, st.Close())
	return path
}

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/braglog/internal/entry"
)

// createTestStore creates a new store in a temporary directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustCreate appends an entry or fails the test.
func mustCreate(t *testing.T, s *Store, message string, d entry.Date) entry.LogEntry {
	t.Helper()
	e, err := s.Create(context.Background(), message, d)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", message, err)
	}
	return e
}

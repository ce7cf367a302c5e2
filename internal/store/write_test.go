package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/braglog/internal/entry"
)

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	s := createTestStore(t)
	d := entry.NewDate(2024, time.May, 12)

	e1 := mustCreate(t, s, "Task 1", d)
	e2 := mustCreate(t, s, "Task 2", d)
	e3 := mustCreate(t, s, "Task 3", d)

	assert.Less(t, e1.ID, e2.ID)
	assert.Less(t, e2.ID, e3.ID)
	assert.Equal(t, "Task 2", e2.Message)
	assert.Equal(t, d, e2.LogDate)
}

func TestCreate_StoresDateAsText(t *testing.T) {
	s := createTestStore(t)
	mustCreate(t, s, "Task", entry.NewDate(2024, time.March, 5))

	var raw string
	require.NoError(t, s.db.QueryRow("SELECT log_date FROM log_entries").Scan(&raw))
	assert.Equal(t, "2024-03-05", raw)
}

func TestCreate_RejectsEmptyMessage(t *testing.T) {
	s := createTestStore(t)

	for _, msg := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(context.Background(), msg, entry.NewDate(2024, time.May, 12))
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_ClosedStore(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.Create(context.Background(), "Task", entry.NewDate(2024, time.May, 12))
	require.Error(t, err)

	var se *EntryStoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "create entry", se.Op)
}

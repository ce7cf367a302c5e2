package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/braglog/internal/entry"
	"github.com/roach88/braglog/internal/filter"
	"github.com/roach88/braglog/internal/store"
	"github.com/roach88/braglog/internal/testutil"
)

func TestShow(t *testing.T) {
	d := entry.NewDate(2024, 5, 12)
	db := testutil.SeedDatabase(t,
		testutil.Seed{Message: "Task 1", Date: d},
		testutil.Seed{Message: "Task 2", Date: d},
		testutil.Seed{Message: "Task 3", Date: d},
	)

	out, _, err := runCLI(t, "--db", db, "show")
	require.NoError(t, err)
	assertGolden(t, "show_all", out)
}

func TestShowContains(t *testing.T) {
	d := entry.NewDate(2024, 5, 12)
	db := testutil.SeedDatabase(t,
		testutil.Seed{Message: "Bug fix in the authentication", Date: d},
		testutil.Seed{Message: "Develop a fantastic feature", Date: d},
		testutil.Seed{Message: "another bug fix", Date: d},
	)

	out, _, err := runCLI(t, "--db", db, "show", "--contains", "fix")
	require.NoError(t, err)
	assertGolden(t, "show_contains", out)
}

func TestShowOnSpecificDate(t *testing.T) {
	db := testutil.SeedDatabase(t,
		testutil.Seed{Message: "Bug fix in the authentication", Date: entry.NewDate(2024, 3, 12)},
		testutil.Seed{Message: "Develop a fantastic feature", Date: entry.NewDate(2024, 4, 12)},
		testutil.Seed{Message: "another bug fix", Date: entry.NewDate(2024, 5, 14)},
	)

	out, _, err := runCLI(t, "--db", db, "show", "--on", "2024-05-14")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-14: another bug fix\n", out)
}

func TestShowOnSpecificDateRelative(t *testing.T) {
	db := testutil.SeedDatabase(t,
		testutil.Seed{Message: "Bug fix in the authentication", Date: testToday},
		testutil.Seed{Message: "another bug fix", Date: daysAgo(1)},
	)

	out, _, err := runCLI(t, "--db", db, "show", "--on", "yesterday")
	require.NoError(t, err)
	assert.Equal(t, daysAgo(1).String()+": another bug fix\n", out)
}

func seedThreeDays(t *testing.T) string {
	t.Helper()
	return testutil.SeedDatabase(t,
		testutil.Seed{Message: "Mentor a new developer", Date: daysAgo(2)},
		testutil.Seed{Message: "another bug fix", Date: daysAgo(1)},
		testutil.Seed{Message: "Bug fix in the authentication", Date: testToday},
	)
}

func TestShowSince(t *testing.T) {
	db := seedThreeDays(t)

	out, _, err := runCLI(t, "--db", db, "show", "--since", "yesterday")
	require.NoError(t, err)
	assert.Equal(t,
		daysAgo(1).String()+": another bug fix\n"+
			testToday.String()+": Bug fix in the authentication\n",
		out)
}

func TestShowUntil(t *testing.T) {
	db := seedThreeDays(t)

	out, _, err := runCLI(t, "--db", db, "show", "--until", "yesterday")
	require.NoError(t, err)
	assert.Equal(t,
		daysAgo(2).String()+": Mentor a new developer\n"+
			daysAgo(1).String()+": another bug fix\n",
		out)
}

func TestShowSinceUntilToday(t *testing.T) {
	db := seedThreeDays(t)

	out, _, err := runCLI(t, "--db", db, "show", "--since", "yesterday", "--until", "today")
	require.NoError(t, err)
	assert.Equal(t,
		daysAgo(1).String()+": another bug fix\n"+
			testToday.String()+": Bug fix in the authentication\n",
		out)
}

func TestShowSinceUntil(t *testing.T) {
	db := testutil.SeedDatabase(t,
		testutil.Seed{Message: "Give a presentation about TDD", Date: daysAgo(3)},
		testutil.Seed{Message: "Mentor a new developer", Date: daysAgo(2)},
		testutil.Seed{Message: "another bug fix", Date: daysAgo(1)},
		testutil.Seed{Message: "Bug fix in the authentication", Date: testToday},
	)

	out, _, err := runCLI(t, "--db", db, "show", "--since", "3 days ago", "--until", "2 days ago")
	require.NoError(t, err)
	assertGolden(t, "show_since_until", out)
}

func TestShowOnSinceUntilMutuallyExclusive(t *testing.T) {
	db := filepath.Join(t.TempDir(), "never-created.db")

	tests := [][]string{
		{"show", "--on", "3 days ago", "--until", "2 days ago"},
		{"show", "--on", "today", "--since", "yesterday"},
		{"show", "--until", "today", "--on", "today", "--contains", "fix"},
	}
	for _, args := range tests {
		out, _, err := runCLI(t, append([]string{"--db", db}, args...)...)
		require.Error(t, err)
		assert.NotEqual(t, ExitSuccess, GetExitCode(err))
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, err.Error(), "not allowed with")
		assert.Empty(t, out)

		var mx *filter.MutuallyExclusiveOptionError
		assert.True(t, errors.As(err, &mx))
	}

	// Validation runs before the store is opened.
	assert.NoFileExists(t, db)
}

func TestShowInvalidDate(t *testing.T) {
	db := seedThreeDays(t)

	out, _, err := runCLI(t, "--db", db, "show", "--since", "last tuesday")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--since")
	assert.Contains(t, err.Error(), "last tuesday")
	assert.Empty(t, out)
}

func TestShowEmptyResult(t *testing.T) {
	db := seedThreeDays(t)

	out, _, err := runCLI(t, "--db", db, "show", "--on", "2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, GetExitCode(err))
	assert.Empty(t, out)
}

func TestShowEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "nested", "brag.db")

	out, _, err := runCLI(t, "--db", db, "show")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, db)
}

func TestShowEmptyContainsMatchesAll(t *testing.T) {
	db := seedThreeDays(t)

	out, _, err := runCLI(t, "--db", db, "show", "--contains", "")
	require.NoError(t, err)
	assert.Equal(t, 3, len(splitLines(out)))
}

func TestShowJSON(t *testing.T) {
	d := entry.NewDate(2024, 5, 12)
	db := testutil.SeedDatabase(t,
		testutil.Seed{Message: "Task 1", Date: d},
		testutil.Seed{Message: "Task 2", Date: d},
	)

	out, _, err := runCLI(t, "--db", db, "--format", "json", "show")
	require.NoError(t, err)
	assertGolden(t, "show_json", out)
}

func TestShowUnopenableDatabase(t *testing.T) {
	// A directory where the database file should be.
	db := t.TempDir()

	_, _, err := runCLI(t, "--db", db, "show")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, store.IsStoreError(err))
}

func TestShowRejectsArgs(t *testing.T) {
	_, _, err := runCLI(t, "--db", filepath.Join(t.TempDir(), "b.db"), "show", "extra")
	require.Error(t, err)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

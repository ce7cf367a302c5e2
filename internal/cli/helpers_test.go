package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/braglog/internal/config"
	"github.com/roach88/braglog/internal/entry"
	"github.com/roach88/braglog/internal/testutil"
)

// testToday is the fixed "today" for CLI tests.
var testToday = entry.NewDate(2024, time.May, 14)

// isolateConfig points config loading at a missing file and clears the
// braglog environment so the developer's own settings cannot leak in.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))
	for _, k := range []string{"BRAGLOG_DB", "BRAGLOG_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// runCLI executes the root command with args and returns stdout, stderr and
// the command error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateConfig(t)

	clock := testutil.NewDayClock(testToday)
	cmd := NewRootCommandWithOptions(&RootOptions{Today: clock.Today})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// assertGolden compares output against testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func assertGolden(t *testing.T, name string, output string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}

func daysAgo(n int) entry.Date {
	return testToday.AddDays(-n)
}

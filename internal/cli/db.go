package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/braglog/internal/store"
)

// openStore resolves the database path, creates its directory if needed and
// opens the store. Callers must Close the returned store.
func openStore(opts *RootOptions) (*store.Store, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Database); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, WrapExitError(ExitFailure, "failed to open database", fmt.Errorf("create %s: %w", dir, err))
		}
	}

	slog.Debug("opening database", "path", cfg.Database)
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "failed to open database", err)
	}
	return st, nil
}

// closeStore closes st, logging rather than returning a close failure.
func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/braglog/internal/config"
	"github.com/roach88/braglog/internal/entry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // --db; overrides config when set

	// Today returns the current date. Nil means the local wall-clock date.
	// Tests set it so relative dates resolve deterministically.
	Today func() entry.Date

	cfg *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the braglog CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts, letting
// callers preset fields such as Today.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "braglog",
		Short: "braglog - a log of the things you got done",
		Long: `braglog keeps a dated log of your accomplishments in a local SQLite
database, so that review season starts from notes instead of memory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return setupLogging(opts, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid usage", err)
	})

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewLogsPathCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// setupLogging installs the default slog handler on the command's stderr.
// Level comes from config, raised to debug by --verbose.
func setupLogging(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}

	logLevel, err := cfg.Level()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// config loads configuration once per invocation and applies --db.
func (o *RootOptions) config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to locate config", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if o.Database != "" {
		cfg.Database = o.Database
	}

	o.cfg = cfg
	return cfg, nil
}

// today returns the reference date for relative date phrases.
func (o *RootOptions) today() entry.Date {
	if o.Today != nil {
		return o.Today()
	}
	return entry.DateOf(time.Now())
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

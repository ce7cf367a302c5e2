package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/braglog/internal/filter"
	"github.com/roach88/braglog/internal/query"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	On       string
	Since    string
	Until    string
	Contains string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show logged entries",
		Long: `Show logged entries, oldest first.

Dates accept YYYY-MM-DD, "today", "yesterday" or "N days ago".
--on cannot be combined with --since or --until; --since and --until
form an inclusive range. --contains is a case-sensitive substring match
and combines with any date filter.

Examples:
  braglog show
  braglog show --on yesterday
  braglog show --since "7 days ago" --contains review
  braglog show --since 2024-01-01 --until 2024-03-31 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.On, "on", "", "show entries logged on this date")
	cmd.Flags().StringVar(&opts.Since, "since", "", "show entries logged on or after this date")
	cmd.Flags().StringVar(&opts.Until, "until", "", "show entries logged on or before this date")
	cmd.Flags().StringVar(&opts.Contains, "contains", "", "show entries whose message contains this text")

	return cmd
}

// filterOptions collects the filter flags, recording which were given.
func (o *ShowOptions) filterOptions(cmd *cobra.Command) filter.Options {
	flags := cmd.Flags()
	opt := func(name, value string) filter.Option {
		return filter.Option{Value: value, Set: flags.Changed(name)}
	}
	return filter.Options{
		On:       opt("on", o.On),
		Since:    opt("since", o.Since),
		Until:    opt("until", o.Until),
		Contains: opt("contains", o.Contains),
	}
}

func runShow(opts *ShowOptions, cmd *cobra.Command) error {
	// Validate before touching the database so a bad invocation has no side effects.
	spec, err := filter.Build(opts.filterOptions(cmd), opts.today())
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(st)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	for e, err := range query.Execute(cmd.Context(), spec, st) {
		if err != nil {
			return WrapExitError(ExitFailure, "failed to read entries", err)
		}
		if err := out.Entry(e); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
	}
	return nil
}

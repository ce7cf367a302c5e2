package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/braglog/internal/dates"
	"github.com/roach88/braglog/internal/filter"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Date string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <message>...",
		Short: "Log an accomplishment",
		Long: `Log an accomplishment. All arguments are joined into one message.

Examples:
  braglog add "Shipped the billing migration"
  braglog add Mentored a new developer --date yesterday
  braglog add -d 2024-05-12 Gave a talk about TDD`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "today", "date to file the entry under")

	return cmd
}

// normalizeMessage joins words with single spaces, trims the result and
// puts it in Unicode NFC so visually identical messages compare equal.
func normalizeMessage(words []string) string {
	return strings.TrimSpace(norm.NFC.String(strings.Join(words, " ")))
}

func runAdd(opts *AddOptions, args []string, cmd *cobra.Command) error {
	message := normalizeMessage(args)
	if message == "" {
		return NewExitError(ExitCommandError, "message must not be empty")
	}

	logDate, err := dates.Resolve(opts.Date, opts.today())
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid date",
			&filter.InvalidDateError{Option: "date", Value: opts.Date, Err: err})
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(st)

	e, err := st.Create(cmd.Context(), message, logDate)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to save entry", err)
	}

	if opts.Format == "json" {
		out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return out.Entry(e)
	}
	return nil
}

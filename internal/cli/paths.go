package cli

import (
	"github.com/spf13/cobra"
)

// NewLogsPathCommand creates the logs-path command.
func NewLogsPathCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logs-path",
		Short:         "Print the path of the log database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.config()
			if err != nil {
				return err
			}
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Value("path", cfg.Database)
		},
	}
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the effective configuration as YAML.

Settings come from the config file (BRAGLOG_CONFIG or the per-user config
directory), then BRAGLOG_DB and BRAGLOG_LOG_LEVEL, then --db.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.config()
			if err != nil {
				return err
			}
			b, err := cfg.YAML()
			if err != nil {
				return WrapExitError(ExitFailure, "failed to render config", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

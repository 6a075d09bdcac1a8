// Package cli implements the invcache command line.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/invcache/internal/config"
)

// logger is the package-level logger for CLI operations, set up in the
// root PersistentPreRunE.
var logger = zerolog.Nop() //nolint:gochecknoglobals // configured once per command execution

// NewRootCmd creates the root Cobra command for the invcache CLI.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logLevel string
		debug    bool
	)

	cmd := &cobra.Command{
		Use:           "invcache",
		Short:         "Memoized matrix inversion",
		Long:          "invcache: invert matrices through a single-entry cache that is cleared whenever the matrix changes",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logLevel = zerolog.LevelDebugValue
			}
			logger = config.NewLogger(cmd.ErrOrStderr(), logLevel).
				With().Str("component", "cli").Logger()
			logger.Debug().Str("command", cmd.Name()).Msg("command started")

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (shows cache hit/miss events)")
	cmd.AddCommand(newInvertCmd())

	return cmd
}

const rootCmdExample = `  # Invert the matrix in scenario.yaml twice (second time from cache)
  invcache invert -f scenario.yaml

  # Show cache events and check A × A⁻¹ ≈ I
  invcache invert -f scenario.yaml --debug --verify

  # Treat pivots below 1e-12 as singular, print YAML
  invcache invert -f scenario.yaml --pivot-tol 1e-12 -o yaml`

// Package cli implements the ecomood command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecomood/ecomood/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Persistent flag names.
const (
	flagDebug   = "debug"
	flagJournal = "journal"
	flagDemo    = "demo"
	flagStrict  = "strict"
	flagOutput  = "output"
	flagAsOf    = "as-of"
)

// NewRootCmd creates the root Cobra command for the ecomood CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "ecomood",
		Short:   "Personal carbon footprint and mood journal",
		Long:    "ecomood turns logged activities into kg CO2e, tracks how your footprint moves and suggests where to cut it.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	cmd.PersistentFlags().String(flagJournal, "", "journal file (default $ECOMOOD_HOME/journal.yaml)")
	cmd.PersistentFlags().Bool(flagDemo, false, "use the built-in sample journal")
	cmd.PersistentFlags().Bool(flagStrict, false, "fail when activities are ignored as unknown or malformed")
	cmd.PersistentFlags().StringP(flagOutput, "o", "", "output format: table or json (default from config)")
	cmd.PersistentFlags().String(flagAsOf, "", "treat this day (YYYY-MM-DD) as today")

	cmd.AddCommand(
		NewFootprintCmd(),
		NewTrendCmd(),
		NewRecommendCmd(),
		NewFactorsCmd(),
		NewDashboardCmd(),
		newLogCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Footprint of today's journal entries
  ecomood footprint

  # Footprint of an activities file
  ecomood footprint --file activities.yaml

  # Log a 12 km bus ride and a reflection
  ecomood log activity transport bus 12
  ecomood log reflection "Took the bus, felt good" --sentiment positive --score 0.6

  # Dashboard for the last 30 days, interactively
  ecomood dashboard --window 30d --interactive

  # Try everything on sample data
  ecomood dashboard --demo

  # Compare two footprints
  ecomood trend 11.1 9.9`

// newLogCmd creates the log command group for journal submissions.
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "log", Short: "Record activities and reflections in the journal"}
	cmd.AddCommand(NewLogActivityCmd(), NewLogReflectionCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at $ECOMOOD_HOME/config.yaml for syntax and semantic correctness.

This includes:
- YAML syntax and the schema version
- Output format and precision
- Logging level
- Dashboard window
- Budget amount, alert thresholds and exit code`,
		Example: `  # Validate current configuration
  ecomood config validate

  # Validate and show detailed information
  ecomood config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.Path())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	if journalPath, err := cfg.JournalPath(); err == nil {
		cmd.Printf("  Journal: %s\n", journalPath)
	}
	cmd.Printf("  Dashboard window: %s\n", cfg.Dashboard.Window)

	printBudgetDetails(cmd, cfg.Budget)
}

func printBudgetDetails(cmd *cobra.Command, budget config.BudgetConfig) {
	if !budget.IsEnabled() {
		cmd.Println("  No daily budget configured")
		return
	}

	cmd.Printf("  Daily budget: %g kg CO2e\n", budget.DailyKg)
	cmd.Printf("  Alert thresholds: %s\n", formatThresholds(budget.GetAlerts()))
	if budget.ExitOnThreshold {
		cmd.Printf("  Exit code on threshold: %d\n", budget.ExitCode)
	}
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/insights"
	"github.com/ecomood/ecomood/internal/journal"
)

// NewTrendCmd creates the trend command.
func NewTrendCmd() *cobra.Command {
	var window string

	cmd := &cobra.Command{
		Use:   "trend [current previous]",
		Short: "Compare a footprint with a previous one",
		Long: `Compares two footprints in kg CO2e.

With two arguments, compares them directly. Without arguments, compares the
journal's footprint over --window with the window of equal length before it.
A zero previous footprint cannot serve as a baseline: the change is the
current value and the percentage is 100 when it is positive.`,
		Example: `  ecomood trend 11.1 9.9
  ecomood trend --window 30d`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected 0 or 2 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(cmd, args, window)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", "", "journal window: 7d, 30d or 90d (default from config)")

	return cmd
}

func runTrend(cmd *cobra.Command, args []string, window string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	var current, previous float64
	if len(args) == 2 {
		if current, err = parseKg("current", args[0]); err != nil {
			return err
		}
		if previous, err = parseKg("previous", args[1]); err != nil {
			return err
		}
	} else {
		current, previous, err = journalTotals(cmd, window)
		if err != nil {
			return err
		}
	}

	result := greenops.Compare(current, previous)
	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	renderTrend(cmd.OutOrStdout(), result)
	return nil
}

func parseKg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s footprint %q: %w", name, s, err)
	}
	return v, nil
}

// journalTotals returns the totals of the window ending today and the one before it.
func journalTotals(cmd *cobra.Command, window string) (float64, float64, error) {
	w, err := resolveWindow(window)
	if err != nil {
		return 0, 0, err
	}
	today, err := now(cmd)
	if err != nil {
		return 0, 0, err
	}
	store, err := openJournal(cmd)
	if err != nil {
		return 0, 0, err
	}

	total := func(from, to time.Time) (float64, error) {
		entries, fetchErr := store.Activities(cmd.Context(), from, to)
		if fetchErr != nil {
			return 0, fmt.Errorf("reading journal: %w", fetchErr)
		}
		return greenops.Aggregate(journal.Records(entries)).Total, nil
	}

	current, err := total(w.Range(today))
	if err != nil {
		return 0, 0, err
	}
	previous, err := total(w.PreviousRange(today))
	if err != nil {
		return 0, 0, err
	}
	return current, previous, nil
}

// resolveWindow parses a --window value, falling back to dashboard.window.
func resolveWindow(window string) (insights.Window, error) {
	if window == "" {
		window = config.GetGlobalConfig().Dashboard.Window
	}
	return insights.ParseWindow(window)
}

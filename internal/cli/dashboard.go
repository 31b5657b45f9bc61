package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/insights"
	"github.com/ecomood/ecomood/internal/tui"
)

var (
	// ErrNotATerminal is returned when --interactive is used without a terminal.
	ErrNotATerminal = errors.New("interactive mode requires a terminal")

	// ErrZeroExitCode is returned when --exit-code 0 is combined with
	// --exit-on-threshold, which could never signal an alert.
	ErrZeroExitCode = errors.New("--exit-code must be non-zero when exiting on a budget threshold")
)

// DashboardFlags holds the dashboard command flags.
type DashboardFlags struct {
	Window          string
	Interactive     bool
	ExitOnThreshold bool
	ExitCode        int
}

// NewDashboardCmd creates the dashboard command.
func NewDashboardCmd() *cobra.Command {
	var flags DashboardFlags

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show footprint, mood and recommendations for a window",
		Long: `Builds the dashboard for the last 7, 30 or 90 days of the journal: the
footprint breakdown and its trend against the previous window, daily totals
paired with the day's mood, summary figures and recommendations.

When a daily carbon budget is configured, the dashboard reports how much of it
is used. With --exit-on-threshold the command exits with --exit-code when an
alert threshold is reached.`,
		Example: `  ecomood dashboard
  ecomood dashboard --window 30d -o json
  ecomood dashboard --interactive
  ecomood dashboard --exit-on-threshold --exit-code 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Window, "window", "w", "", "window: 7d, 30d or 90d (default from config)")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "browse the dashboard in a terminal UI")
	cmd.Flags().BoolVar(&flags.ExitOnThreshold, "exit-on-threshold", false,
		"exit with a non-zero code when a budget alert threshold is reached")
	cmd.Flags().IntVar(&flags.ExitCode, "exit-code", defaultBudgetExitCode,
		"exit code to use when a budget alert threshold is reached (0-255)")

	return cmd
}

func runDashboard(cmd *cobra.Command, flags DashboardFlags) error {
	window, err := resolveWindow(flags.Window)
	if err != nil {
		return err
	}
	today, err := now(cmd)
	if err != nil {
		return err
	}

	budget := config.GetGlobalConfig().Budget
	if cmd.Flags().Changed("exit-on-threshold") {
		budget.ExitOnThreshold = flags.ExitOnThreshold
	}
	if cmd.Flags().Changed("exit-code") {
		budget.ExitCode = flags.ExitCode
	}
	if budget.ExitOnThreshold {
		if cmd.Flags().Changed("exit-code") && flags.ExitCode == 0 {
			return ErrZeroExitCode
		}
		if err = budget.Validate(); err != nil {
			return fmt.Errorf("invalid budget configuration: %w", err)
		}
	}

	store, err := openJournal(cmd)
	if err != nil {
		return err
	}
	strict := strictMode(cmd)

	fetch := func(ctx context.Context, w insights.Window) (*insights.Dashboard, error) {
		return insights.Build(ctx, store, insights.Options{
			Window: w,
			Now:    today,
			Strict: strict,
			Budget: budget,
		})
	}

	if flags.Interactive {
		return runInteractiveDashboard(cmd.Context(), window, fetch)
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	d, err := fetch(cmd.Context(), window)
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	if format == config.FormatJSON {
		err = writeJSON(cmd.OutOrStdout(), d)
	} else {
		err = renderDashboard(cmd.OutOrStdout(), d)
	}
	if err != nil {
		return err
	}

	if strict {
		if diagErr := failOnDiagnostics(cmd, d.Diagnostics); diagErr != nil {
			return diagErr
		}
	}
	return checkBudgetExit(d.Budget, budget)
}

func runInteractiveDashboard(ctx context.Context, window insights.Window, fetch tui.DashboardFetcher) error {
	if !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}

	start := time.Now()
	final, err := tea.NewProgram(tui.NewDashboardModel(ctx, window, fetch), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	logger.Debug().Ctx(ctx).Dur("duration", time.Since(start)).Msg("interactive dashboard closed")

	if m, ok := final.(tui.DashboardModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

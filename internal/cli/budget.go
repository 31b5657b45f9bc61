package cli

import (
	"fmt"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/insights"
)

// defaultBudgetExitCode is used when exit_on_threshold is set without an exit
// code. A zero budget.exit_code means unset; the flag rejects an explicit 0.
const defaultBudgetExitCode = 1

// BudgetExitError carries the exit code for a carbon budget alert.
// main turns it into the process exit status.
type BudgetExitError struct {
	ExitCode int
	Reason   string
}

func (e *BudgetExitError) Error() string {
	return e.Reason
}

// checkBudgetExit returns a BudgetExitError when an alert fired and the
// budget asks to exit on threshold, or nil otherwise.
func checkBudgetExit(status *insights.BudgetStatus, budget config.BudgetConfig) error {
	if status == nil || !status.Alerting() || !budget.ExitOnThreshold {
		return nil
	}

	exitCode := budget.ExitCode
	if exitCode == 0 {
		exitCode = defaultBudgetExitCode
	}
	var highest float64
	for _, t := range status.Triggered {
		highest = max(highest, t)
	}
	return &BudgetExitError{
		ExitCode: exitCode,
		Reason: fmt.Sprintf("carbon budget alert: average %.2f kg/day is %.1f%% of the %.2f kg budget (threshold %g%%)",
			status.AverageDaily, status.Utilization, status.DailyKg, highest),
	}
}

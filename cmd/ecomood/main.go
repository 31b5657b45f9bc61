// Command ecomood is a personal carbon footprint and mood journal.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecomood/ecomood/internal/cli"
	"github.com/ecomood/ecomood/pkg/version"
)

func main() {
	os.Exit(extractBudgetExitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}

// extractBudgetExitCode maps an error from run to a process exit code: 0 for
// nil, the configured code for a budget alert, 1 otherwise.
func extractBudgetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var budgetErr *cli.BudgetExitError
	if errors.As(err, &budgetErr) {
		return budgetErr.ExitCode
	}
	return 1
}

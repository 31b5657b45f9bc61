package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomood/ecomood/internal/cli"
	"github.com/ecomood/ecomood/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "ecomood", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}

func TestExtractBudgetExitCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantExitCode int
		wantIsBudget bool
	}{
		{
			name:         "BudgetExitError with exit code 2",
			err:          &cli.BudgetExitError{ExitCode: 2, Reason: "carbon budget alert"},
			wantExitCode: 2,
			wantIsBudget: true,
		},
		{
			name:         "BudgetExitError with exit code 42",
			err:          &cli.BudgetExitError{ExitCode: 42, Reason: "average above budget"},
			wantExitCode: 42,
			wantIsBudget: true,
		},
		{
			name:         "wrapped BudgetExitError",
			err:          errors.Join(errors.New("outer"), &cli.BudgetExitError{ExitCode: 3, Reason: "wrapped budget"}),
			wantExitCode: 3,
			wantIsBudget: true,
		},
		{
			name:         "non-BudgetExitError falls through",
			err:          errors.New("generic error"),
			wantExitCode: 1,
			wantIsBudget: false,
		},
		{
			name:         "nil error returns 0",
			err:          nil,
			wantExitCode: 0,
			wantIsBudget: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode := extractBudgetExitCode(tt.err)
			if tt.err == nil {
				assert.Equal(t, 0, exitCode, "nil error should return 0")
				return
			}

			var budgetErr *cli.BudgetExitError
			isBudget := errors.As(tt.err, &budgetErr)
			assert.Equal(t, tt.wantIsBudget, isBudget)

			if tt.wantIsBudget {
				require.True(t, isBudget)
				assert.Equal(t, tt.wantExitCode, budgetErr.ExitCode)
			}

			assert.Equal(t, tt.wantExitCode, exitCode)
		})
	}
}

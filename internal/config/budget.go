package config

import (
	"errors"
	"fmt"
)

// Default alert thresholds, as a percentage of the carbon budget.
const (
	DefaultAlert80  = 80.0
	DefaultAlert100 = 100.0
)

// Budget validation limits.
const (
	MaxThresholdPercent = 1000.0 // Allow alerts up to 1000% for extreme overshoot detection
	MinThresholdPercent = 0.0
)

// Exit code limits (Unix standard).
const (
	MinExitCode = 0
	MaxExitCode = 255
)

// Budget validation errors.
var (
	ErrBudgetNegative           = errors.New("daily carbon budget cannot be negative")
	ErrAlertThresholdOutOfRange = errors.New("alert threshold must be between 0 and 1000")
	ErrExitCodeOutOfRange       = errors.New("exit code must be between 0 and 255")
)

// BudgetConfig is a personal daily carbon budget in kg CO2e.
type BudgetConfig struct {
	// DailyKg is the daily allowance. Zero disables the budget.
	DailyKg float64 `yaml:"daily_kg" json:"daily_kg"`

	// Alerts are utilization percentages that raise an alert when reached.
	Alerts []float64 `yaml:"alerts,omitempty" json:"alerts,omitempty"`

	// ExitOnThreshold makes the dashboard exit non-zero when an alert fires.
	ExitOnThreshold bool `yaml:"exit_on_threshold,omitempty" json:"exit_on_threshold,omitempty"`

	// ExitCode is the exit code used when ExitOnThreshold triggers. Zero means
	// unset and falls back to 1.
	ExitCode int `yaml:"exit_code,omitempty" json:"exit_code,omitempty"`
}

// DefaultAlerts returns the alerts applied when none are configured.
func DefaultAlerts() []float64 {
	return []float64{DefaultAlert80, DefaultAlert100}
}

// IsEnabled reports whether a budget is set.
func (b BudgetConfig) IsEnabled() bool {
	return b.DailyKg > 0
}

// GetAlerts returns the configured alerts or the defaults.
func (b BudgetConfig) GetAlerts() []float64 {
	if len(b.Alerts) == 0 {
		return DefaultAlerts()
	}
	return b.Alerts
}

// Validate checks the budget configuration.
func (b BudgetConfig) Validate() error {
	if b.DailyKg < 0 {
		return fmt.Errorf("%w: got %.2f", ErrBudgetNegative, b.DailyKg)
	}
	for _, a := range b.Alerts {
		if a < MinThresholdPercent || a > MaxThresholdPercent {
			return fmt.Errorf("%w: got %.2f", ErrAlertThresholdOutOfRange, a)
		}
	}
	if b.ExitCode < MinExitCode || b.ExitCode > MaxExitCode {
		return fmt.Errorf("%w: got %d", ErrExitCodeOutOfRange, b.ExitCode)
	}
	return nil
}

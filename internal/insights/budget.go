package insights

import (
	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
)

// BudgetStatus compares the average daily footprint with the configured budget.
type BudgetStatus struct {
	DailyKg      float64 `json:"dailyKg"`
	AverageDaily float64 `json:"averageDaily"`

	// Utilization is AverageDaily as a percentage of DailyKg.
	Utilization float64 `json:"utilization"`

	// Triggered lists the alert thresholds that were reached, ascending as configured.
	Triggered []float64 `json:"triggered,omitempty"`
}

// Exceeded reports whether the average is over the budget.
func (s *BudgetStatus) Exceeded() bool {
	return s != nil && s.AverageDaily > s.DailyKg
}

// Alerting reports whether any alert threshold was reached.
func (s *BudgetStatus) Alerting() bool {
	return s != nil && len(s.Triggered) > 0
}

// EvaluateBudget returns the budget status for a daily average, or nil when
// no budget is configured.
func EvaluateBudget(budget config.BudgetConfig, averageDaily float64) *BudgetStatus {
	if !budget.IsEnabled() {
		return nil
	}

	utilization := averageDaily / budget.DailyKg * greenops.PercentageMultiplier
	status := &BudgetStatus{
		DailyKg:      budget.DailyKg,
		AverageDaily: averageDaily,
		Utilization:  round(utilization, greenops.PercentagePrecision),
	}
	for _, threshold := range budget.GetAlerts() {
		if utilization >= threshold {
			status.Triggered = append(status.Triggered, threshold)
		}
	}
	return status
}

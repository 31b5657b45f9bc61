package greenops

// Compare returns the change from previous to current.
//
// A zero previous value cannot serve as a baseline: the change is current
// itself, the percentage is 100 when current is positive and 0 otherwise, and
// the trend is an increase when current is positive and stable otherwise.
// This does not distinguish a missing previous period from one whose footprint
// was genuinely zero.
//
// Otherwise Change is rounded to ChangePrecision decimals and Percentage,
// computed from the unrounded change, to PercentagePrecision decimals. The
// trend follows the sign of the unrounded change.
func Compare(current, previous float64) TrendResult {
	if previous == 0 {
		result := TrendResult{Change: current, Trend: TrendStable}
		if current > 0 {
			result.Percentage = PercentageMultiplier
			result.Trend = TrendIncrease
		}
		return result
	}

	change := current - previous
	percentage := (change / previous) * PercentageMultiplier

	trend := TrendStable
	switch {
	case change > 0:
		trend = TrendIncrease
	case change < 0:
		trend = TrendDecrease
	}

	return TrendResult{
		Change:     roundTo(change, ChangePrecision),
		Percentage: roundTo(percentage, PercentagePrecision),
		Trend:      trend,
	}
}

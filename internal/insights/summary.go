package insights

import (
	"github.com/shopspring/decimal"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

const (
	// weekDays is the length of each half of the weekly trend comparison.
	weekDays = 7

	summaryPrecision = 1
)

// Summary holds the headline figures of the dashboard.
type Summary struct {
	TotalCarbon         float64 `json:"totalCarbon"`
	AverageDaily        float64 `json:"averageDaily"`
	PositiveDaysPercent float64 `json:"positiveDaysPercent"`

	// WeeklyTrend compares the carbon of the last seven logged days with the
	// seven before them.
	WeeklyTrend greenops.TrendResult `json:"weeklyTrend"`
}

// Summarize computes the summary of a period. The weekly trend only sees the
// given days; Build replaces it with one computed over the previous window
// too. It returns nil when either series is empty.
func Summarize(days []DailyFootprint, reflections []journal.Reflection) *Summary {
	if len(days) == 0 || len(reflections) == 0 {
		return nil
	}

	var total float64
	for _, d := range days {
		total += d.Total
	}

	positive := 0
	for _, r := range reflections {
		if r.Sentiment == journal.SentimentPositive {
			positive++
		}
	}

	return &Summary{
		TotalCarbon:         round(total, summaryPrecision),
		AverageDaily:        round(total/float64(len(days)), summaryPrecision),
		PositiveDaysPercent: round(float64(positive)/float64(len(reflections))*greenops.PercentageMultiplier, 0),
		WeeklyTrend:         WeeklyTrend(days),
	}
}

// WeeklyTrend compares the total of the last seven entries of a date-sorted
// series with the seven entries before them. The series should reach back
// beyond the displayed period, otherwise a short period has no earlier week.
func WeeklyTrend(days []DailyFootprint) greenops.TrendResult {
	lastWeek := sumTotals(tail(days, 0, weekDays))
	prevWeek := sumTotals(tail(days, weekDays, 2*weekDays))
	return greenops.Compare(lastWeek, prevWeek)
}

// tail returns days[len-to : len-from], clamped to the slice.
func tail(days []DailyFootprint, from, to int) []DailyFootprint {
	end := max(len(days)-from, 0)
	start := max(len(days)-to, 0)
	return days[start:end]
}

func sumTotals(days []DailyFootprint) float64 {
	var s float64
	for _, d := range days {
		s += d.Total
	}
	return s
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

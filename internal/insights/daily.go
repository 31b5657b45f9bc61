package insights

import (
	"math"
	"slices"
	"strings"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

// DailyFootprint is the breakdown of a single day.
type DailyFootprint struct {
	Date string `json:"date"`
	greenops.FootprintBreakdown
}

// CombinedDay pairs a day's footprint with its mood.
type CombinedDay struct {
	Date      string            `json:"date"`
	Carbon    float64           `json:"carbon"`
	Sentiment float64           `json:"sentiment"`
	Mood      journal.Sentiment `json:"mood"`
}

// DailyFootprints groups entries by date and aggregates each day. Days are
// returned oldest first; days without activities are omitted.
func DailyFootprints(entries []journal.ActivityEntry) []DailyFootprint {
	byDate := make(map[string][]greenops.ActivityRecord)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e.ActivityRecord)
	}

	days := make([]DailyFootprint, 0, len(byDate))
	for date, records := range byDate {
		days = append(days, DailyFootprint{Date: date, FootprintBreakdown: greenops.Aggregate(records)})
	}
	slices.SortFunc(days, func(a, b DailyFootprint) int { return strings.Compare(a.Date, b.Date) })
	return days
}

// CombineByDate pairs each day with the first reflection written on the same
// date. Days without one get a zero score and a neutral mood.
func CombineByDate(days []DailyFootprint, reflections []journal.Reflection) []CombinedDay {
	first := make(map[string]journal.Reflection, len(reflections))
	for _, r := range reflections {
		if _, seen := first[r.Date]; !seen {
			first[r.Date] = r
		}
	}

	combined := make([]CombinedDay, len(days))
	for i, d := range days {
		c := CombinedDay{Date: d.Date, Carbon: d.Total, Mood: journal.SentimentNeutral}
		if r, ok := first[d.Date]; ok {
			c.Sentiment = r.Score
			c.Mood = r.Sentiment
		}
		combined[i] = c
	}
	return combined
}

// Correlation returns the Pearson coefficient between daily carbon and
// sentiment score. ok is false with fewer than two days or when either
// series is constant.
func Correlation(points []CombinedDay) (float64, bool) {
	n := float64(len(points))
	if len(points) < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.Carbon
		sumY += p.Sentiment
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for _, p := range points {
		dx, dy := p.Carbon-meanX, p.Sentiment-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	r := cov / math.Sqrt(varX*varY)
	return math.Max(-1, math.Min(1, r)), true
}

package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/insights"
	"github.com/ecomood/ecomood/internal/journal"
)

func entry(date string, c greenops.Category, kind string, v float64) journal.ActivityEntry {
	return journal.ActivityEntry{
		Date:           date,
		ActivityRecord: greenops.ActivityRecord{Category: c, Type: kind, Value: greenops.Number(v)},
	}
}

func reflection(date string, s journal.Sentiment, score float64) journal.Reflection {
	return journal.Reflection{Date: date, Text: "note", Sentiment: s, Score: score}
}

func TestDailyFootprints(t *testing.T) {
	days := insights.DailyFootprints([]journal.ActivityEntry{
		entry("2024-08-21", greenops.CategoryDiet, "beef", 1),
		entry("2024-08-20", greenops.CategoryTransport, "car", 10),
		entry("2024-08-21", greenops.CategoryTransport, "bus", 12),
		entry("2024-08-20", greenops.CategoryEnergy, "electricity", 9),
	})

	require.Len(t, days, 2)
	assert.Equal(t, "2024-08-20", days[0].Date)
	assert.InDelta(t, 2.1, days[0].Transport, 1e-9)
	assert.InDelta(t, 2.1, days[0].Energy, 1e-9)
	assert.InDelta(t, 4.2, days[0].Total, 1e-9)

	assert.Equal(t, "2024-08-21", days[1].Date)
	assert.InDelta(t, 27.0, days[1].Diet, 1e-9)
	assert.InDelta(t, 28.07, days[1].Total, 1e-9)
}

func TestDailyFootprints_Empty(t *testing.T) {
	assert.Empty(t, insights.DailyFootprints(nil))
}

func TestCombineByDate(t *testing.T) {
	days := []insights.DailyFootprint{
		{Date: "2024-08-20", FootprintBreakdown: greenops.FootprintBreakdown{Total: 11.1}},
		{Date: "2024-08-21", FootprintBreakdown: greenops.FootprintBreakdown{Total: 9.9}},
	}
	refl := []journal.Reflection{
		reflection("2024-08-20", journal.SentimentPositive, 0.8),
		reflection("2024-08-20", journal.SentimentNegative, -0.9),
		reflection("2024-08-22", journal.SentimentNegative, -0.5),
	}

	got := insights.CombineByDate(days, refl)
	assert.Equal(t, []insights.CombinedDay{
		{Date: "2024-08-20", Carbon: 11.1, Sentiment: 0.8, Mood: journal.SentimentPositive},
		{Date: "2024-08-21", Carbon: 9.9, Sentiment: 0, Mood: journal.SentimentNeutral},
	}, got)
}

func TestCorrelation(t *testing.T) {
	tests := []struct {
		name   string
		points []insights.CombinedDay
		want   float64
		wantOK bool
	}{
		{name: "empty", points: nil},
		{name: "single", points: []insights.CombinedDay{{Carbon: 1, Sentiment: 1}}},
		{
			name: "constant carbon",
			points: []insights.CombinedDay{
				{Carbon: 5, Sentiment: 0.1},
				{Carbon: 5, Sentiment: 0.9},
			},
		},
		{
			name: "perfect negative",
			points: []insights.CombinedDay{
				{Carbon: 2, Sentiment: 0.8},
				{Carbon: 4, Sentiment: 0.4},
				{Carbon: 6, Sentiment: 0},
			},
			want:   -1,
			wantOK: true,
		},
		{
			name: "perfect positive",
			points: []insights.CombinedDay{
				{Carbon: 1, Sentiment: -1},
				{Carbon: 3, Sentiment: 1},
			},
			want:   1,
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := insights.Correlation(tt.points)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

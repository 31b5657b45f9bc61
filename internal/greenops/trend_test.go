package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     TrendResult
	}{
		{
			name:     "zero baseline with growth",
			current:  5,
			previous: 0,
			want:     TrendResult{Change: 5, Percentage: 100, Trend: TrendIncrease},
		},
		{
			name:     "zero baseline and zero current",
			current:  0,
			previous: 0,
			want:     TrendResult{Change: 0, Percentage: 0, Trend: TrendStable},
		},
		{
			name:     "zero baseline keeps the unrounded current",
			current:  3.14159,
			previous: 0,
			want:     TrendResult{Change: 3.14159, Percentage: 100, Trend: TrendIncrease},
		},
		{
			name:     "zero baseline with negative current is stable",
			current:  -2,
			previous: 0,
			want:     TrendResult{Change: -2, Percentage: 0, Trend: TrendStable},
		},
		{
			name:     "decrease",
			current:  9,
			previous: 10,
			want:     TrendResult{Change: -1, Percentage: -10, Trend: TrendDecrease},
		},
		{
			name:     "equal values are stable",
			current:  10,
			previous: 10,
			want:     TrendResult{Change: 0, Percentage: 0, Trend: TrendStable},
		},
		{
			name:     "increase is rounded",
			current:  11.1,
			previous: 9.9,
			want:     TrendResult{Change: 1.2, Percentage: 12.1, Trend: TrendIncrease},
		},
		{
			name:     "drop to zero",
			current:  0,
			previous: 4,
			want:     TrendResult{Change: -4, Percentage: -100, Trend: TrendDecrease},
		},
		{
			name:     "tiny change rounds to zero but keeps its direction",
			current:  10.001,
			previous: 10,
			want:     TrendResult{Change: 0, Percentage: 0, Trend: TrendIncrease},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.current, tt.previous)
			assert.InDelta(t, tt.want.Change, got.Change, 1e-9)
			assert.InDelta(t, tt.want.Percentage, got.Percentage, 1e-9)
			assert.Equal(t, tt.want.Trend, got.Trend)
		})
	}
}

func TestCompare_Idempotent(t *testing.T) {
	assert.Equal(t, Compare(12.34, 56.78), Compare(12.34, 56.78))
}

package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/insights"
)

func TestTrend_Arguments(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "trend", "11.1", "9.9")
	require.NoError(t, err)
	assert.Contains(t, out, "+12.1%")
	assert.Contains(t, out, "increase")
}

func TestTrend_ZeroBaseline(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "trend", "4", "0", "-o", "json")
	require.NoError(t, err)

	var got greenops.TrendResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, greenops.TrendResult{Change: 4, Percentage: 100, Trend: greenops.TrendIncrease}, got)
}

func TestTrend_Journal(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, withDemo("trend", "-o", "json")...)
	require.NoError(t, err)

	var got greenops.TrendResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 96.54, got.Change, 1e-9)
	assert.InDelta(t, 993.2, got.Percentage, 1e-9)
	assert.Equal(t, greenops.TrendIncrease, got.Trend)
}

func TestTrend_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, err := executeCmd(t, "trend", "11.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 0 or 2 arguments")

	_, _, err = executeCmd(t, "trend", "lots", "9.9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid current footprint")

	_, _, err = executeCmd(t, withDemo("trend", "--window", "14d")...)
	require.ErrorIs(t, err, insights.ErrInvalidWindow)
}

func TestRecommend_Flags(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "recommend", "--transport", "6", "--diet", "3", "--energy", "1", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Breakdown            greenops.FootprintBreakdown `json:"breakdown"`
		Recommendations      []greenops.Recommendation   `json:"recommendations"`
		TotalPotentialSaving float64                     `json:"totalPotentialSaving"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 10, got.Breakdown.Total, 1e-9)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, greenops.CategoryTransport, got.Recommendations[0].Category)
	assert.Equal(t, greenops.PriorityHigh, got.Recommendations[0].Priority)
	assert.InDelta(t, 1.8, got.TotalPotentialSaving, 1e-9)
}

func TestRecommend_LowFootprint(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "recommend", "--transport", "1", "--diet", "1", "--energy", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "positive")
	assert.Contains(t, out, "Excellent work!")
	assert.NotContains(t, out, "Total potential saving")
}

func TestRecommend_Journal(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, withDemo("recommend")...)
	require.NoError(t, err)
	assert.Contains(t, out, "PRIORITY")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "Total potential saving: 38.31 kg")
}

func TestFactors(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "factors")
	require.NoError(t, err)
	assert.Contains(t, out, "electricity")
	assert.Contains(t, out, "beef")
	assert.Contains(t, out, "kWh")

	out, _, err = executeCmd(t, "factors", "-c", "diet", "-o", "json")
	require.NoError(t, err)
	var entries []greenops.FactorEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(greenops.Types(greenops.CategoryDiet)))
	for _, e := range entries {
		assert.Equal(t, greenops.CategoryDiet, e.Category)
	}

	_, _, err = executeCmd(t, "factors", "-c", "space")
	require.ErrorIs(t, err, greenops.ErrUnknownCategory)
}

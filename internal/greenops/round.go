package greenops

import "github.com/shopspring/decimal"

// roundTo rounds the shortest decimal form of v to places decimals, half away
// from zero, so 1.995 becomes 2.00 even though its binary value is below it.
// Non-finite values are returned unchanged.
func roundTo(v float64, places int32) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundBreakdown(b FootprintBreakdown) FootprintBreakdown {
	return FootprintBreakdown{
		Transport: roundTo(b.Transport, BreakdownPrecision),
		Diet:      roundTo(b.Diet, BreakdownPrecision),
		Energy:    roundTo(b.Energy, BreakdownPrecision),
		Total:     roundTo(b.Total, BreakdownPrecision),
	}
}

package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if !isFinite(f) {
		return fmt.Sprintf("%v", f)
	}
	rounded := roundTo(f, int32(precision)) //nolint:gosec // precision is a small display constant.

	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	intPart, fracPart, ok := strings.Cut(formatted, ".")
	if !ok {
		return formatted
	}

	negative := strings.HasPrefix(intPart, "-")
	var whole int64
	if _, err := fmt.Sscan(strings.TrimPrefix(intPart, "-"), &whole); err != nil {
		return formatted
	}
	grouped := FormatNumber(whole)
	if negative {
		grouped = "-" + grouped
	}
	return grouped + "." + fracPart
}

// FormatKg formats a footprint as "1,234.57 kg".
func FormatKg(kg float64) string {
	return FormatFloat(kg, BreakdownPrecision) + " kg"
}

// FormatPercent formats a trend percentage with an explicit sign, e.g. "+12.5%".
func FormatPercent(p float64) string {
	if p > 0 {
		return "+" + FormatFloat(p, PercentagePrecision) + "%"
	}
	return FormatFloat(p, PercentagePrecision) + "%"
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold (1 million) use comma-separated format.
// Values at or above LargeNumberThreshold use "~X.X million" format.
// Values at or above BillionThreshold use "~X.X billion" format.
//
// Example: FormatLarge(1500000000) returns "~1.5 billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}

	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}

	return FormatNumber(int64(math.Round(n)))
}

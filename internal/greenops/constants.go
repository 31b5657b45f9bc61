package greenops

// Recommendation thresholds in kg CO2e. A category rule fires when its subtotal
// is strictly greater than the threshold.
const (
	// TransportHighThreshold marks transport emissions worth a high priority suggestion.
	TransportHighThreshold = 5.0

	// TransportMediumThreshold marks transport emissions worth a medium priority suggestion.
	TransportMediumThreshold = 2.0

	// DietHighThreshold marks diet emissions worth a high priority suggestion.
	DietHighThreshold = 8.0

	// DietMediumThreshold marks diet emissions worth a medium priority suggestion.
	DietMediumThreshold = 4.0

	// EnergyHighThreshold marks energy emissions worth a high priority suggestion.
	EnergyHighThreshold = 4.0

	// EnergyMediumThreshold marks energy emissions worth a medium priority suggestion.
	EnergyMediumThreshold = 2.0

	// LowFootprintThreshold is the total below which the footprint is praised.
	// The comparison is strict: a total of exactly 8 earns no praise.
	LowFootprintThreshold = 8.0
)

// Savings multipliers estimate the share of a category subtotal that could be
// avoided by following the matching recommendation.
const (
	TransportHighSaving   = 0.3
	TransportMediumSaving = 0.15
	DietHighSaving        = 0.4
	DietMediumSaving      = 0.2
	EnergyHighSaving      = 0.25
	EnergyMediumSaving    = 0.1
)

// Rounding precision applied to results.
const (
	// BreakdownPrecision is the number of decimals kept on every breakdown field.
	BreakdownPrecision = 2

	// ChangePrecision is the number of decimals kept on a trend change.
	ChangePrecision = 2

	// PercentagePrecision is the number of decimals kept on a trend percentage.
	PercentagePrecision = 1

	// PercentageMultiplier converts a ratio to a percentage.
	PercentageMultiplier = 100.0
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// To calculate an equivalency, divide the carbon value by the factor:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// Display Threshold Constants control when equivalencies are shown.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	// Below this threshold the equivalencies become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold is the threshold for using abbreviated display.
	// Values at or above this threshold use "~X.X million" format.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for billion-scale display.
	BillionThreshold = 1_000_000_000
)

// Package greenops computes personal carbon footprints.
//
// It converts logged activities (kilometres travelled, servings eaten,
// kilowatt-hours used) into kg CO2e using a fixed emission factor table,
// aggregates them into a per-category breakdown, compares periods and derives
// rule-based recommendations. Every function in the package is pure and safe
// for concurrent use.
package greenops

import (
	"encoding/json"
	"fmt"
)

// Category groups activities that share an emission factor sub-table.
type Category string

const (
	// CategoryTransport covers travel measured in kilometres.
	CategoryTransport Category = "transport"

	// CategoryDiet covers meals measured in servings.
	CategoryDiet Category = "diet"

	// CategoryEnergy covers household energy measured in kWh.
	CategoryEnergy Category = "energy"

	// CategoryOverall is a recommendation scope only; it never holds activities.
	CategoryOverall Category = "overall"
)

// Categories returns the activity categories in breakdown order.
func Categories() []Category {
	return []Category{CategoryTransport, CategoryDiet, CategoryEnergy}
}

// IsKnown reports whether c is one of the three activity categories.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryTransport, CategoryDiet, CategoryEnergy:
		return true
	default:
		return false
	}
}

// String returns the category name.
func (c Category) String() string { return string(c) }

// ActivityRecord is one logged activity. Type must name an entry of the
// category's factor sub-table to contribute anything.
//
// Negative values are accepted and reduce the footprint; callers that need to
// reject them must do so before aggregation.
type ActivityRecord struct {
	Category Category `json:"category" yaml:"category"`
	Type     string   `json:"type"     yaml:"type"`
	Value    Value    `json:"value"    yaml:"value"`
}

// FootprintBreakdown is the aggregated footprint in kg CO2e.
// Every field is rounded to BreakdownPrecision decimals.
type FootprintBreakdown struct {
	Transport float64 `json:"transport" yaml:"transport"`
	Diet      float64 `json:"diet"      yaml:"diet"`
	Energy    float64 `json:"energy"    yaml:"energy"`
	Total     float64 `json:"total"     yaml:"total"`
}

// Subtotal returns the subtotal for c, or zero for an unknown category.
func (b FootprintBreakdown) Subtotal(c Category) float64 {
	switch c {
	case CategoryTransport:
		return b.Transport
	case CategoryDiet:
		return b.Diet
	case CategoryEnergy:
		return b.Energy
	case CategoryOverall:
		return b.Total
	default:
		return 0
	}
}

// Trend classifies the direction of a change between two footprints.
type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendStable   Trend = "stable"
)

// TrendResult describes how a footprint moved relative to a previous value.
type TrendResult struct {
	// Change is current minus previous in kg CO2e.
	Change float64 `json:"change"`

	// Percentage is Change relative to previous, times 100.
	Percentage float64 `json:"percentage"`

	Trend Trend `json:"trend"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityPositive Priority = "positive"
)

// Recommendation is one actionable suggestion derived from a breakdown.
type Recommendation struct {
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`

	// PotentialSaving is the estimated kg CO2e avoided if the suggestion is followed.
	PotentialSaving float64 `json:"potentialSaving"`
}

// Diagnostic explains why an activity record contributed nothing to a breakdown.
type Diagnostic struct {
	// Index is the position of the record in the aggregated slice.
	Index    int      `json:"index"`
	Category Category `json:"category"`
	Type     string   `json:"type"`
	Err      error    `json:"-"`
}

// Error implements error so diagnostics can be joined or wrapped.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("activity %d (%s/%s): %v", d.Index, d.Category, d.Type, d.Err)
}

// Unwrap exposes the sentinel error for errors.Is.
func (d Diagnostic) Unwrap() error { return d.Err }

// MarshalJSON adds the reason text, which Err cannot carry on its own.
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	type plain Diagnostic
	reason := ""
	if d.Err != nil {
		reason = d.Err.Error()
	}
	return json.Marshal(struct {
		plain
		Reason string `json:"reason"`
	}{plain(d), reason})
}

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	InputKg float64             `json:"input_kg"`
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the full prose format for CLI/TUI output.
	// Example: "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated format for constrained outputs.
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}

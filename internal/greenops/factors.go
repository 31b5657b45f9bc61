package greenops

import "sort"

// Factor is the emission factor for one activity type.
type Factor struct {
	// KgPerUnit is kg CO2e emitted per Unit of activity. Never negative.
	KgPerUnit float64 `json:"kg_per_unit"`

	// Unit is the quantity the activity is logged in (km, serving, meal, kWh).
	Unit string `json:"unit"`
}

// FactorEntry is a flattened row of the factor table.
type FactorEntry struct {
	Category Category `json:"category"`
	Type     string   `json:"type"`
	Factor
}

// factorTable holds the emission factors, keyed by category then type.
// It is built once and never mutated.
//
//nolint:gochecknoglobals // Read-only lookup table.
var factorTable = map[Category]map[string]Factor{
	CategoryTransport: {
		"car":        {KgPerUnit: 0.21, Unit: "km"},
		"bus":        {KgPerUnit: 0.089, Unit: "km"},
		"train":      {KgPerUnit: 0.041, Unit: "km"},
		"bike":       {KgPerUnit: 0, Unit: "km"},
		"walking":    {KgPerUnit: 0, Unit: "km"},
		"flight":     {KgPerUnit: 0.255, Unit: "km"},
		"motorcycle": {KgPerUnit: 0.103, Unit: "km"},
		"subway":     {KgPerUnit: 0.028, Unit: "km"},
	},
	CategoryDiet: {
		"beef":       {KgPerUnit: 27, Unit: "serving"},
		"pork":       {KgPerUnit: 12.1, Unit: "serving"},
		"chicken":    {KgPerUnit: 6.9, Unit: "serving"},
		"fish":       {KgPerUnit: 6.1, Unit: "serving"},
		"vegetarian": {KgPerUnit: 3.81, Unit: "meal"},
		"vegan":      {KgPerUnit: 1.5, Unit: "meal"},
	},
	CategoryEnergy: {
		"electricity": {KgPerUnit: 0.233, Unit: "kWh"},
		"gas":         {KgPerUnit: 0.185, Unit: "kWh"},
		"heating":     {KgPerUnit: 0.216, Unit: "kWh"},
		"solar":       {KgPerUnit: 0.041, Unit: "kWh"},
		"wind":        {KgPerUnit: 0.011, Unit: "kWh"},
	},
}

// Lookup returns the emission factor for an activity type.
// An unknown category or type is a normal outcome and yields (Factor{}, false).
func Lookup(category Category, activityType string) (Factor, bool) {
	types, ok := factorTable[category]
	if !ok {
		return Factor{}, false
	}
	f, ok := types[activityType]
	return f, ok
}

// Types returns the activity types known for category, sorted by name.
// Returns nil for an unknown category.
func Types(category Category) []string {
	types, ok := factorTable[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every row of the factor table in category order, then by type name.
func Entries() []FactorEntry {
	var entries []FactorEntry
	for _, c := range Categories() {
		for _, t := range Types(c) {
			entries = append(entries, FactorEntry{Category: c, Type: t, Factor: factorTable[c][t]})
		}
	}
	return entries
}

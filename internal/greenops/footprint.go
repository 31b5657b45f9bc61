package greenops

// FootprintOf returns the unrounded footprint in kg CO2e of one activity.
//
// It returns 0 when the category/type pair has no factor, when value is NaN or
// infinite, or when the product overflows. It never fails.
func FootprintOf(category Category, activityType string, value float64) float64 {
	f, ok := Lookup(category, activityType)
	if !ok || !isFinite(value) {
		return 0
	}
	footprint := f.KgPerUnit * value
	if !isFinite(footprint) {
		return 0
	}
	return footprint
}

// Aggregate sums the footprints of records into a per-category breakdown.
//
// Records are processed in input order. Values that cannot be read as numbers
// count as zero and records with an unknown category are skipped. Every field
// of the result, including Total, is rounded independently to
// BreakdownPrecision decimals after summation.
func Aggregate(records []ActivityRecord) FootprintBreakdown {
	b, _ := aggregate(records, false)
	return b
}

// AggregateWithDiagnostics returns the same breakdown as Aggregate together
// with one Diagnostic for each record that contributed nothing because it was
// unrecognized or malformed. Records whose factor is legitimately zero (bike,
// walking) or whose value is zero are not reported.
func AggregateWithDiagnostics(records []ActivityRecord) (FootprintBreakdown, []Diagnostic) {
	return aggregate(records, true)
}

func aggregate(records []ActivityRecord, diagnose bool) (FootprintBreakdown, []Diagnostic) {
	var (
		sum   FootprintBreakdown
		diags []Diagnostic
	)

	for i, r := range records {
		value, valid := r.Value.Float64()
		emissions := FootprintOf(r.Category, r.Type, value)

		if diagnose {
			if err := diagnoseRecord(r, value, valid); err != nil {
				diags = append(diags, Diagnostic{Index: i, Category: r.Category, Type: r.Type, Err: err})
			}
		}

		switch r.Category {
		case CategoryTransport:
			sum.Transport += emissions
		case CategoryDiet:
			sum.Diet += emissions
		case CategoryEnergy:
			sum.Energy += emissions
		default:
			continue
		}
		sum.Total += emissions
	}

	return roundBreakdown(sum), diags
}

func diagnoseRecord(r ActivityRecord, value float64, valid bool) error {
	if !r.Category.IsKnown() {
		return ErrUnknownCategory
	}
	f, ok := Lookup(r.Category, r.Type)
	if !ok {
		return ErrUnknownActivityType
	}
	if !valid {
		return ErrInvalidValue
	}
	if !isFinite(f.KgPerUnit * value) {
		return ErrCalculationOverflow
	}
	return nil
}

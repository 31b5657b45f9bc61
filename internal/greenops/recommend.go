package greenops

// categoryRule describes the two-tier threshold rule of one category.
type categoryRule struct {
	category      Category
	highAbove     float64
	highSaving    float64
	highMessage   string
	mediumAbove   float64
	mediumSaving  float64
	mediumMessage string
}

//nolint:gochecknoglobals // Read-only rule table, evaluated in order.
var categoryRules = []categoryRule{
	{
		category:      CategoryTransport,
		highAbove:     TransportHighThreshold,
		highSaving:    TransportHighSaving,
		highMessage:   "Consider using public transport, cycling, or walking for short trips to reduce transport emissions.",
		mediumAbove:   TransportMediumThreshold,
		mediumSaving:  TransportMediumSaving,
		mediumMessage: "You're doing well with transport! Try carpooling or combining trips to optimize further.",
	},
	{
		category:      CategoryDiet,
		highAbove:     DietHighThreshold,
		highSaving:    DietHighSaving,
		highMessage:   "Try reducing meat consumption or choosing chicken or fish over beef to lower your food footprint.",
		mediumAbove:   DietMediumThreshold,
		mediumSaving:  DietMediumSaving,
		mediumMessage: "Consider having one or two plant-based meals per week to further reduce your impact.",
	},
	{
		category:      CategoryEnergy,
		highAbove:     EnergyHighThreshold,
		highSaving:    EnergyHighSaving,
		highMessage:   "Look into energy-efficient appliances and consider reducing heating and cooling usage.",
		mediumAbove:   EnergyMediumThreshold,
		mediumSaving:  EnergyMediumSaving,
		mediumMessage: "You're managing energy well! Small actions like LED bulbs can help reduce further.",
	},
}

const lowFootprintMessage = "Excellent work! You're maintaining a low carbon footprint. Keep up the great habits!"

// Recommend derives suggestions from a breakdown.
//
// Transport, diet and energy each yield at most one recommendation, high
// priority above the upper threshold and medium above the lower one, with a
// potential saving equal to the subtotal times the tier's multiplier. A total
// below LowFootprintThreshold appends a positive "overall" note regardless of
// the category rules. The result is ordered transport, diet, energy, overall
// and holds between zero and four entries.
func Recommend(b FootprintBreakdown) []Recommendation {
	recs := make([]Recommendation, 0, len(categoryRules)+1)

	for _, rule := range categoryRules {
		if rec, ok := rule.evaluate(b.Subtotal(rule.category)); ok {
			recs = append(recs, rec)
		}
	}

	if b.Total < LowFootprintThreshold {
		recs = append(recs, Recommendation{
			Category:        CategoryOverall,
			Priority:        PriorityPositive,
			Message:         lowFootprintMessage,
			PotentialSaving: 0,
		})
	}

	return recs
}

func (r categoryRule) evaluate(subtotal float64) (Recommendation, bool) {
	switch {
	case subtotal > r.highAbove:
		return Recommendation{
			Category:        r.category,
			Priority:        PriorityHigh,
			Message:         r.highMessage,
			PotentialSaving: subtotal * r.highSaving,
		}, true
	case subtotal > r.mediumAbove:
		return Recommendation{
			Category:        r.category,
			Priority:        PriorityMedium,
			Message:         r.mediumMessage,
			PotentialSaving: subtotal * r.mediumSaving,
		}, true
	default:
		return Recommendation{}, false
	}
}

// TotalPotentialSaving sums the potential savings of recs.
func TotalPotentialSaving(recs []Recommendation) float64 {
	var total float64
	for _, r := range recs {
		total += r.PotentialSaving
	}
	return total
}

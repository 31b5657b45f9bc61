package journal

import (
	"fmt"
	"time"

	"github.com/ecomood/ecomood/internal/greenops"
)

type demoActivity struct {
	category greenops.Category
	kind     string
	value    float64
}

type demoDay struct {
	activities []demoActivity
	reflection Reflection
}

// demoDays is oldest first; the last day lands on today.
//
//nolint:gochecknoglobals // Read-only sample data.
var demoDays = []demoDay{
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "bike", 12},
			{greenops.CategoryDiet, "vegetarian", 2},
			{greenops.CategoryEnergy, "electricity", 9},
		},
		reflection: Reflection{Text: "Great day cycling to work!", Sentiment: SentimentPositive, Score: 0.8},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "bus", 24},
			{greenops.CategoryDiet, "chicken", 1},
			{greenops.CategoryEnergy, "electricity", 11},
		},
		reflection: Reflection{Text: "Normal day, nothing special.", Sentiment: SentimentNeutral, Score: 0.1},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "car", 32},
			{greenops.CategoryDiet, "beef", 1},
			{greenops.CategoryEnergy, "gas", 14},
		},
		reflection: Reflection{
			Text:      "Frustrated with traffic, used car instead of bike.",
			Sentiment: SentimentNegative,
			Score:     -0.6,
		},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "walking", 6},
			{greenops.CategoryDiet, "vegan", 3},
			{greenops.CategoryEnergy, "solar", 10},
		},
		reflection: Reflection{
			Text:      "Walked everywhere today, feeling energized!",
			Sentiment: SentimentPositive,
			Score:     0.9,
		},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "train", 40},
			{greenops.CategoryDiet, "fish", 1},
			{greenops.CategoryEnergy, "electricity", 12},
		},
		reflection: Reflection{
			Text:      "Mixed day with some good and bad choices.",
			Sentiment: SentimentNeutral,
			Score:     0.2,
		},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "car", 45},
			{greenops.CategoryDiet, "pork", 1},
			{greenops.CategoryEnergy, "heating", 15},
		},
		reflection: Reflection{
			Text:      "Had to drive more than usual, feeling guilty.",
			Sentiment: SentimentNegative,
			Score:     -0.4,
		},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "bike", 15},
			{greenops.CategoryDiet, "vegetarian", 2},
			{greenops.CategoryEnergy, "wind", 12},
		},
		reflection: Reflection{
			Text:      "Made sustainable choices, proud of myself!",
			Sentiment: SentimentPositive,
			Score:     0.7,
		},
	},
	{
		activities: []demoActivity{
			{greenops.CategoryTransport, "bus", 18},
			{greenops.CategoryDiet, "chicken", 1},
			{greenops.CategoryEnergy, "electricity", 8},
		},
		reflection: Reflection{
			Text:      "Good balance today between convenience and sustainability.",
			Sentiment: SentimentPositive,
			Score:     0.6,
		},
	},
}

// NewDemoStore returns a memory store seeded with a week of sample activities
// and reflections ending on today. IDs are deterministic.
func NewDemoStore(today time.Time) *MemoryStore {
	s := NewMemoryStore()
	start := today.AddDate(0, 0, -(len(demoDays) - 1))

	for i, day := range demoDays {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		for j, a := range day.activities {
			s.activities = append(s.activities, ActivityEntry{
				ID:   fmt.Sprintf("demo-%02d-a%d", i, j),
				Date: date,
				ActivityRecord: greenops.ActivityRecord{
					Category: a.category,
					Type:     a.kind,
					Value:    greenops.Number(a.value),
				},
			})
		}
		r := day.reflection
		r.ID = fmt.Sprintf("demo-%02d-r", i)
		r.Date = date
		s.reflections = append(s.reflections, r)
	}
	return s
}

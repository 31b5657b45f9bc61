// Package journal is the activity and reflection data source behind the
// dashboard: a small fetch/submit contract with an in-memory and a YAML file
// implementation.
package journal

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ecomood/ecomood/internal/greenops"
)

// DateLayout is the calendar-day format used by every journal entry.
const DateLayout = "2006-01-02"

// Score bounds of a reflection.
const (
	MinScore = -1.0
	MaxScore = 1.0
)

// Validation and storage errors.
var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidQuantity  = errors.New("quantity must be a non-negative number")
	ErrInvalidSentiment = errors.New("sentiment must be positive, neutral or negative")
	ErrScoreOutOfRange  = errors.New("sentiment score must be between -1 and 1")
	ErrEmptyReflection  = errors.New("reflection text cannot be empty")
	ErrJournalCorrupted = errors.New("journal file corrupted")
)

// Sentiment is the pre-computed mood label of a reflection.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment parses a sentiment label, case-insensitively.
func ParseSentiment(s string) (Sentiment, error) {
	switch v := Sentiment(strings.ToLower(strings.TrimSpace(s))); v {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return v, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSentiment, s)
	}
}

// ActivityEntry is an activity logged on a given day.
type ActivityEntry struct {
	ID   string `json:"id"   yaml:"id"`
	Date string `json:"date" yaml:"date"`

	greenops.ActivityRecord `yaml:",inline"`

	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Reflection is a free-text note about the day with its sentiment.
type Reflection struct {
	ID        string    `json:"id"        yaml:"id"`
	Date      string    `json:"date"      yaml:"date"`
	Text      string    `json:"text"      yaml:"text"`
	Sentiment Sentiment `json:"sentiment" yaml:"sentiment"`
	Score     float64   `json:"score"     yaml:"score"`
}

// Source fetches journal entries. Ranges are inclusive calendar days; a zero
// time leaves that end unbounded. Results are sorted by date, then ID.
type Source interface {
	Activities(ctx context.Context, from, to time.Time) ([]ActivityEntry, error)
	Reflections(ctx context.Context, from, to time.Time) ([]Reflection, error)
}

// Sink records new journal entries and returns them with their assigned ID.
type Sink interface {
	AddActivity(ctx context.Context, entry ActivityEntry) (ActivityEntry, error)
	AddReflection(ctx context.Context, r Reflection) (Reflection, error)
}

// Store is a Source that also accepts submissions.
type Store interface {
	Source
	Sink
}

// ValidateActivity checks a submitted activity. Submissions are held to a
// stricter standard than aggregation, which tolerates anything: the category
// and type must exist and the quantity must be a non-negative number.
func ValidateActivity(e ActivityEntry) error {
	if err := validateDate(e.Date); err != nil {
		return err
	}
	if !e.Category.IsKnown() {
		return fmt.Errorf("%w: %q", greenops.ErrUnknownCategory, e.Category)
	}
	if _, ok := greenops.Lookup(e.Category, e.Type); !ok {
		return fmt.Errorf("%w: %q in %s (known: %s)", greenops.ErrUnknownActivityType, e.Type, e.Category,
			strings.Join(greenops.Types(e.Category), ", "))
	}
	v, ok := e.Value.Float64()
	if !ok || v < 0 {
		return fmt.Errorf("%w: got %q", ErrInvalidQuantity, e.Value.String())
	}
	return nil
}

// ValidateReflection checks a submitted reflection.
func ValidateReflection(r Reflection) error {
	if err := validateDate(r.Date); err != nil {
		return err
	}
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyReflection
	}
	if _, err := ParseSentiment(string(r.Sentiment)); err != nil {
		return err
	}
	if r.Score < MinScore || r.Score > MaxScore {
		return fmt.Errorf("%w: got %.2f", ErrScoreOutOfRange, r.Score)
	}
	return nil
}

// normalizeReflection validates r and stores its sentiment in canonical form,
// so "Positive" is kept as "positive".
func normalizeReflection(r Reflection) (Reflection, error) {
	if err := ValidateReflection(r); err != nil {
		return Reflection{}, err
	}
	r.Sentiment, _ = ParseSentiment(string(r.Sentiment))
	return r, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}
	return nil
}

// newID returns a new sortable entry ID.
func newID() string {
	return ulid.Make().String()
}

// inRange reports whether the day falls within [from, to]. Zero bounds are open.
func inRange(date string, from, to time.Time) bool {
	if !from.IsZero() && date < from.Format(DateLayout) {
		return false
	}
	if !to.IsZero() && date > to.Format(DateLayout) {
		return false
	}
	return true
}

func filterActivities(all []ActivityEntry, from, to time.Time) []ActivityEntry {
	out := make([]ActivityEntry, 0, len(all))
	for _, e := range all {
		if inRange(e.Date, from, to) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b ActivityEntry) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func filterReflections(all []Reflection, from, to time.Time) []Reflection {
	out := make([]Reflection, 0, len(all))
	for _, r := range all {
		if inRange(r.Date, from, to) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b Reflection) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Records strips journal metadata from entries.
func Records(entries []ActivityEntry) []greenops.ActivityRecord {
	records := make([]greenops.ActivityRecord, len(entries))
	for i, e := range entries {
		records[i] = e.ActivityRecord
	}
	return records
}

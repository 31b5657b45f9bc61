package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
	"github.com/ecomood/ecomood/internal/logging"
)

// ErrNilSource is returned when Build is called without a data source.
var ErrNilSource = errors.New("journal source is required")

// Options controls how a dashboard is built.
type Options struct {
	Window Window
	Now    time.Time

	// Strict collects a diagnostic for every activity that contributed nothing.
	Strict bool

	Budget config.BudgetConfig
}

// Dashboard is everything shown for one window.
type Dashboard struct {
	Window Window `json:"window"`
	From   string `json:"from"`
	To     string `json:"to"`

	Breakdown greenops.FootprintBreakdown `json:"breakdown"`
	Previous  greenops.FootprintBreakdown `json:"previous"`
	Trend     greenops.TrendResult        `json:"trend"`

	Recommendations      []greenops.Recommendation `json:"recommendations"`
	TotalPotentialSaving float64                   `json:"totalPotentialSaving"`

	Daily    []DailyFootprint `json:"daily"`
	Combined []CombinedDay    `json:"combined"`
	Summary  *Summary         `json:"summary,omitempty"`

	// Correlation is nil when it cannot be computed.
	Correlation *float64 `json:"correlation,omitempty"`

	Equivalency greenops.EquivalencyOutput `json:"equivalency"`
	Budget      *BudgetStatus              `json:"budget,omitempty"`

	Diagnostics []greenops.Diagnostic `json:"diagnostics,omitempty"`
	Activities  int                   `json:"activities"`
	Reflections int                   `json:"reflections"`
}

// Build fetches the window and the preceding one from src and derives the
// dashboard. Activities and reflections are fetched concurrently.
func Build(ctx context.Context, src journal.Source, opts Options) (*Dashboard, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if opts.Window.Days() == 0 {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidWindow, opts.Window)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	log := logging.FromContext(ctx).With().Str("component", "insights").Logger()

	from, to := opts.Window.Range(opts.Now)
	prevFrom, prevTo := opts.Window.PreviousRange(opts.Now)

	var (
		activities  []journal.ActivityEntry
		reflections []journal.Reflection
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activities, err = src.Activities(gCtx, prevFrom, to)
		if err != nil {
			return fmt.Errorf("fetching activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reflections, err = src.Reflections(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("fetching reflections: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	current, previous := splitAt(activities, from.Format(journal.DateLayout), prevTo.Format(journal.DateLayout))

	d := &Dashboard{
		Window:      opts.Window,
		From:        from.Format(journal.DateLayout),
		To:          to.Format(journal.DateLayout),
		Activities:  len(current),
		Reflections: len(reflections),
	}

	records := journal.Records(current)
	if opts.Strict {
		d.Breakdown, d.Diagnostics = greenops.AggregateWithDiagnostics(records)
		for _, diag := range d.Diagnostics {
			log.Warn().Ctx(ctx).
				Int("index", diag.Index).
				Str("category", diag.Category.String()).
				Str("type", diag.Type).
				Err(diag.Err).
				Msg("activity ignored")
		}
	} else {
		d.Breakdown = greenops.Aggregate(records)
	}
	d.Previous = greenops.Aggregate(journal.Records(previous))
	d.Trend = greenops.Compare(d.Breakdown.Total, d.Previous.Total)

	d.Recommendations = greenops.Recommend(d.Breakdown)
	d.TotalPotentialSaving = greenops.TotalPotentialSaving(d.Recommendations)

	d.Daily = DailyFootprints(current)
	d.Combined = CombineByDate(d.Daily, reflections)
	d.Summary = Summarize(d.Daily, reflections)
	if d.Summary != nil {
		d.Summary.WeeklyTrend = WeeklyTrend(DailyFootprints(activities))
	}
	if r, ok := Correlation(d.Combined); ok {
		d.Correlation = &r
	}

	eq, err := greenops.Calculate(d.Breakdown.Total)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("equivalency unavailable")
	} else {
		d.Equivalency = eq
	}

	if len(d.Daily) > 0 {
		avg := d.Breakdown.Total / float64(len(d.Daily))
		d.Budget = EvaluateBudget(opts.Budget, avg)
	}

	log.Debug().Ctx(ctx).
		Str("window", string(opts.Window)).
		Int("activities", d.Activities).
		Int("reflections", d.Reflections).
		Float64("total_kg", d.Breakdown.Total).
		Msg("dashboard built")

	return d, nil
}

// splitAt separates entries of the current window from those of the previous one.
func splitAt(entries []journal.ActivityEntry, currentFrom, previousTo string) ([]journal.ActivityEntry, []journal.ActivityEntry) {
	var current, previous []journal.ActivityEntry
	for _, e := range entries {
		switch {
		case e.Date >= currentFrom:
			current = append(current, e)
		case e.Date <= previousTo:
			previous = append(previous, e)
		}
	}
	return current, previous
}

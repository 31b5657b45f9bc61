// Package insights derives the dashboard from journal data: daily footprint
// series, mood pairing, period summaries, budget status and the footprint
// comparison against the preceding window.
package insights

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidWindow is returned for an unsupported dashboard window.
var ErrInvalidWindow = errors.New("window must be one of 7d, 30d, 90d")

// Window is a trailing range of calendar days ending today.
type Window string

const (
	Window7d  Window = "7d"
	Window30d Window = "30d"
	Window90d Window = "90d"
)

// Windows returns the supported windows, shortest first.
func Windows() []Window {
	return []Window{Window7d, Window30d, Window90d}
}

// ParseWindow parses "7d", "30d" or "90d".
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Windows() {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidWindow, s)
}

// Days returns the number of calendar days covered.
func (w Window) Days() int {
	switch w {
	case Window7d:
		return 7
	case Window30d:
		return 30
	case Window90d:
		return 90
	default:
		return 0
	}
}

// Label is the human description of the window.
func (w Window) Label() string {
	switch w {
	case Window90d:
		return "Last 3 months"
	default:
		return fmt.Sprintf("Last %d days", w.Days())
	}
}

// Range returns the first and last day of the window ending on now, both inclusive.
func (w Window) Range(now time.Time) (time.Time, time.Time) {
	to := startOfDay(now)
	return to.AddDate(0, 0, -(w.Days() - 1)), to
}

// PreviousRange returns the window of equal length immediately before Range.
func (w Window) PreviousRange(now time.Time) (time.Time, time.Time) {
	from, _ := w.Range(now)
	return from.AddDate(0, 0, -w.Days()), from.AddDate(0, 0, -1)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

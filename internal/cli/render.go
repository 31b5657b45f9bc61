package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/insights"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// headerSeparatorLen is the length of the separator line below section headers.
const headerSeparatorLen = 40

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

func kg(v float64) string {
	return greenops.FormatFloat(v, config.GetOutputPrecision()) + " kg"
}

func writeSection(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", min(len(title), headerSeparatorLen)))
}

// renderBreakdown prints a per-category footprint table.
func renderBreakdown(w io.Writer, b greenops.FootprintBreakdown) error {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "CATEGORY\tCO2e")
	for _, c := range greenops.Categories() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", c, kg(b.Subtotal(c)))
	}
	_, _ = fmt.Fprintf(tw, "total\t%s\n", kg(b.Total))
	return tw.Flush()
}

// renderTrend prints a trend comparison.
func renderTrend(w io.Writer, r greenops.TrendResult) {
	_, _ = fmt.Fprintf(w, "Change:     %s\n", kg(r.Change))
	_, _ = fmt.Fprintf(w, "Percentage: %s\n", greenops.FormatPercent(r.Percentage))
	_, _ = fmt.Fprintf(w, "Trend:      %s\n", r.Trend)
}

// renderRecommendations prints recommendations with their savings.
func renderRecommendations(w io.Writer, recs []greenops.Recommendation) error {
	if len(recs) == 0 {
		_, _ = fmt.Fprintln(w, "No recommendations.")
		return nil
	}
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "PRIORITY\tCATEGORY\tSAVING\tRECOMMENDATION")
	for _, r := range recs {
		saving := "-"
		if r.PotentialSaving > 0 {
			saving = kg(r.PotentialSaving)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Priority, r.Category, saving, r.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if total := greenops.TotalPotentialSaving(recs); total > 0 {
		_, _ = fmt.Fprintf(w, "\nTotal potential saving: %s\n", kg(total))
	}
	return nil
}

// renderFactors prints the emission factor table.
func renderFactors(w io.Writer, entries []greenops.FactorEntry) error {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "CATEGORY\tTYPE\tKG CO2e\tUNIT")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", e.Category, e.Type, e.KgPerUnit, e.Unit)
	}
	return tw.Flush()
}

// renderEquivalency prints the equivalency line when there is one.
func renderEquivalency(w io.Writer, totalKg float64) {
	eq, err := greenops.Calculate(totalKg)
	if err != nil || eq.IsEmpty {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", eq.DisplayText)
}

// renderDashboard prints the dashboard as plain text sections.
func renderDashboard(w io.Writer, d *insights.Dashboard) error {
	writeSection(w, fmt.Sprintf("ECO DASHBOARD %s .. %s (%s)", d.From, d.To, d.Window.Label()))
	if err := renderBreakdown(w, d.Breakdown); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\nCompared with the previous %d days (%s):\n", d.Window.Days(), kg(d.Previous.Total))
	renderTrend(w, d.Trend)

	if s := d.Summary; s != nil {
		_, _ = fmt.Fprintln(w)
		writeSection(w, "SUMMARY")
		_, _ = fmt.Fprintf(w, "Total CO2e:    %.1f kg\n", s.TotalCarbon)
		_, _ = fmt.Fprintf(w, "Daily average: %.1f kg\n", s.AverageDaily)
		_, _ = fmt.Fprintf(w, "Positive days: %.0f%%\n", s.PositiveDaysPercent)
		_, _ = fmt.Fprintf(w, "Weekly trend:  %s\n", greenops.FormatPercent(s.WeeklyTrend.Percentage))
	}
	if d.Correlation != nil {
		_, _ = fmt.Fprintf(w, "Carbon/mood correlation: %+.2f\n", *d.Correlation)
	}

	if len(d.Daily) > 0 {
		_, _ = fmt.Fprintln(w)
		writeSection(w, "DAYS")
		tw := newTabWriter(w)
		_, _ = fmt.Fprintln(tw, "DATE\tTOTAL\tMOOD\tSCORE")
		for i, day := range d.Daily {
			mood, score := "-", "-"
			if i < len(d.Combined) {
				mood = string(d.Combined[i].Mood)
				score = fmt.Sprintf("%+.1f", d.Combined[i].Sentiment)
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", day.Date, kg(day.Total), mood, score)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w)
	writeSection(w, "RECOMMENDATIONS")
	if err := renderRecommendations(w, d.Recommendations); err != nil {
		return err
	}

	if !d.Equivalency.IsEmpty && d.Equivalency.DisplayText != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", d.Equivalency.DisplayText)
	}
	if b := d.Budget; b != nil {
		_, _ = fmt.Fprintf(w, "\nBudget: %.1f%% of %s/day used", b.Utilization, kg(b.DailyKg))
		if b.Alerting() {
			_, _ = fmt.Fprintf(w, " (alert at %s%%)", formatThresholds(b.Triggered))
		}
		_, _ = fmt.Fprintln(w)
	}
	return nil
}

func formatThresholds(ts []float64) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = fmt.Sprintf("%g", t)
	}
	return strings.Join(parts, ", ")
}

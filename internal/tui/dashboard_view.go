package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/insights"
)

// View renders the current screen (Bubble Tea interface).
func (m DashboardModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return BadStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m DashboardModel) renderListView() string {
	sections := []string{
		RenderSummary(m.dashboard, m.width),
		m.renderTabs(),
	}
	switch m.tab {
	case TabRecommendations:
		sections = append(sections, RenderRecommendations(m.dashboard))
	default:
		if m.dashboard == nil || len(m.dashboard.Daily) == 0 {
			sections = append(sections, InfoStyle.Render("No activities logged in this window."))
		} else {
			sections = append(sections, m.table.View())
		}
	}
	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderTabs() string {
	names := []string{"Days", "Recommendations"}
	rendered := make([]string, len(names))
	for i, name := range names {
		if Tab(i) == m.tab {
			rendered[i] = ActiveTabStyle.Render(name)
		} else {
			rendered[i] = TabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m DashboardModel) renderStatusBar() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return LabelStyle.Render(m.window.Label() + "  " + strings.Join(parts, "  "))
}

func (m DashboardModel) renderDetailView() string {
	idx, ok := m.selectedDay()
	if !ok {
		return InfoStyle.Render("No day selected.")
	}
	return RenderDayDetail(m.dashboard, idx, m.width)
}

// RenderSummary renders the headline box of a dashboard.
func RenderSummary(d *insights.Dashboard, width int) string {
	if d == nil {
		return InfoStyle.Render("No dashboard data.")
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("ECO DASHBOARD  %s → %s", d.From, d.To)))
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Footprint:  "))
	b.WriteString(ValueStyle.Render(greenops.FormatKg(d.Breakdown.Total)))
	b.WriteString(LabelStyle.Render(fmt.Sprintf("  (transport %s, diet %s, energy %s)",
		greenops.FormatKg(d.Breakdown.Transport),
		greenops.FormatKg(d.Breakdown.Diet),
		greenops.FormatKg(d.Breakdown.Energy))))
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("vs previous: "))
	b.WriteString(trendStyle(d.Trend.Trend).Render(
		fmt.Sprintf("%s (%s) %s", greenops.FormatKg(d.Trend.Change), greenops.FormatPercent(d.Trend.Percentage), d.Trend.Trend)))
	b.WriteString("\n")

	if s := d.Summary; s != nil {
		b.WriteString(LabelStyle.Render("Daily avg:  "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.1f kg", s.AverageDaily)))
		b.WriteString(LabelStyle.Render("  Positive days: "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.0f%%", s.PositiveDaysPercent)))
		b.WriteString(LabelStyle.Render("  Weekly trend: "))
		b.WriteString(trendStyle(s.WeeklyTrend.Trend).Render(greenops.FormatPercent(s.WeeklyTrend.Percentage)))
		b.WriteString("\n")
	}
	if d.Correlation != nil {
		b.WriteString(LabelStyle.Render("Carbon/mood correlation: "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%+.2f", *d.Correlation)))
		b.WriteString("\n")
	}
	if !d.Equivalency.IsEmpty && d.Equivalency.DisplayText != "" {
		b.WriteString(InfoStyle.Render(d.Equivalency.DisplayText))
		b.WriteString("\n")
	}
	if d.Budget != nil {
		style := GoodStyle
		switch {
		case d.Budget.Exceeded():
			style = BadStyle
		case d.Budget.Alerting():
			style = WarnStyle
		}
		b.WriteString(LabelStyle.Render("Budget:     "))
		b.WriteString(style.Render(fmt.Sprintf("%.1f%% of %s/day", d.Budget.Utilization, greenops.FormatKg(d.Budget.DailyKg))))
		b.WriteString("\n")
	}
	if n := len(d.Diagnostics); n > 0 {
		b.WriteString(WarnStyle.Render(fmt.Sprintf("%d activities ignored", n)))
		b.WriteString("\n")
	}

	return BoxStyle.Width(max(width-borderPadding, 0)).Render(strings.TrimSuffix(b.String(), "\n"))
}

// RenderRecommendations lists the recommendations with their savings.
func RenderRecommendations(d *insights.Dashboard) string {
	if d == nil || len(d.Recommendations) == 0 {
		return InfoStyle.Render("No recommendations.")
	}

	var b strings.Builder
	for _, r := range d.Recommendations {
		b.WriteString(priorityStyle(r.Priority).Render(fmt.Sprintf("%-8s", strings.ToUpper(string(r.Priority)))))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%-9s", r.Category)))
		b.WriteString(" ")
		b.WriteString(r.Message)
		if r.PotentialSaving > 0 {
			b.WriteString(LabelStyle.Render(fmt.Sprintf(" (save ~%s)", greenops.FormatKg(r.PotentialSaving))))
		}
		b.WriteString("\n")
	}
	if d.TotalPotentialSaving > 0 {
		b.WriteString(LabelStyle.Render("Total potential saving: "))
		b.WriteString(GoodStyle.Render(greenops.FormatKg(d.TotalPotentialSaving)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderDayDetail renders one day of the dashboard with its reflection.
func RenderDayDetail(d *insights.Dashboard, idx, width int) string {
	day := d.Daily[idx]

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("DAY " + day.Date))
	b.WriteString("\n\n")
	for _, c := range greenops.Categories() {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-10s", c)))
		b.WriteString(ValueStyle.Render(greenops.FormatKg(day.Subtotal(c))))
		b.WriteString("\n")
	}
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-10s", "total")))
	b.WriteString(ValueStyle.Render(greenops.FormatKg(day.Total)))
	b.WriteString("\n")

	if idx < len(d.Combined) {
		c := d.Combined[idx]
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Mood: "))
		b.WriteString(moodStyle(string(c.Mood)).Render(fmt.Sprintf("%s (%+.1f)", c.Mood, c.Sentiment)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("[esc] back  [q] quit"))

	return BoxStyle.Width(max(width-borderPadding, 0)).Render(b.String())
}

func trendStyle(t greenops.Trend) lipgloss.Style {
	switch t {
	case greenops.TrendIncrease:
		return WarnStyle
	case greenops.TrendDecrease:
		return GoodStyle
	default:
		return ValueStyle
	}
}

func priorityStyle(p greenops.Priority) lipgloss.Style {
	switch p {
	case greenops.PriorityHigh:
		return BadStyle
	case greenops.PriorityMedium:
		return WarnStyle
	default:
		return GoodStyle
	}
}

func moodStyle(mood string) lipgloss.Style {
	switch mood {
	case "positive":
		return GoodStyle
	case "negative":
		return BadStyle
	default:
		return ValueStyle
	}
}

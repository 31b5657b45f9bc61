package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/insights"
	"github.com/ecomood/ecomood/internal/logging"
)

// ViewState is the screen the dashboard is showing.
type ViewState int

const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateQuitting
	ViewStateError
)

// Tab selects the content of the list screen.
type Tab int

const (
	TabDays Tab = iota
	TabRecommendations
)

const numTabs = 2

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 30
	minHeight     = 5
	summaryHeight = 12
	borderPadding = 2
)

// DashboardFetcher builds the dashboard for a window. It should honor ctx.
type DashboardFetcher func(ctx context.Context, window insights.Window) (*insights.Dashboard, error)

// dashboardLoadedMsg carries the result of a fetch.
type dashboardLoadedMsg struct {
	dashboard *insights.Dashboard
	err       error
}

// DashboardModel is the Bubble Tea model of the interactive dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	state ViewState
	tab   Tab
	ctx   context.Context

	window    insights.Window
	fetch     DashboardFetcher
	dashboard *insights.Dashboard

	table   table.Model
	keys    KeyMap
	loading *LoadingState

	width  int
	height int

	err error
}

// NewDashboardModel returns a model that fetches window on start.
func NewDashboardModel(ctx context.Context, window insights.Window, fetch DashboardFetcher) DashboardModel {
	m := DashboardModel{
		state:   ViewStateLoading,
		ctx:     ctx,
		window:  window,
		fetch:   fetch,
		keys:    DefaultKeyMap(),
		loading: NewLoadingState(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.table = m.buildDaysTable()
	return m
}

// Init starts the spinner and the first fetch.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

func (m DashboardModel) fetchCmd() tea.Cmd {
	ctx, window, fetch := m.ctx, m.window, m.fetch
	return func() tea.Msg {
		if fetch == nil {
			return dashboardLoadedMsg{err: fmt.Errorf("no dashboard source configured")}
		}
		d, err := fetch(ctx, window)
		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}

// Update handles messages (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildDaysTable()
		return m, nil
	case dashboardLoadedMsg:
		return m.handleLoaded(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	default:
		return m, nil
	}
}

func (m DashboardModel) handleLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.FromContext(m.ctx).Error().Ctx(m.ctx).
			Str("component", "tui").
			Err(msg.err).
			Msg("dashboard fetch failed")
		m.err = msg.err
		m.state = ViewStateError
		return m, tea.Quit
	}
	m.dashboard = msg.dashboard
	m.state = ViewStateList
	m.table = m.buildDaysTable()
	return m, nil
}

func (m DashboardModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Tab):
			m.tab = (m.tab + 1) % numTabs
			return m, nil
		case key.Matches(keyMsg, m.keys.Window):
			m.window = nextWindow(m.window)
			return m.reload()
		case key.Matches(keyMsg, m.keys.Refresh):
			return m.reload()
		case key.Matches(keyMsg, m.keys.Enter):
			if m.tab == TabDays && m.dashboard != nil && len(m.dashboard.Daily) > 0 {
				m.state = ViewStateDetail
			}
			return m, nil
		}
	}

	if m.tab != TabDays {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.state = ViewStateList
	}
	return m, nil
}

func (m DashboardModel) reload() (tea.Model, tea.Cmd) {
	m.state = ViewStateLoading
	return m, tea.Batch(m.loading.Init(), m.fetchCmd())
}

// nextWindow cycles 7d, 30d, 90d.
func nextWindow(w insights.Window) insights.Window {
	windows := insights.Windows()
	for i, candidate := range windows {
		if candidate == w {
			return windows[(i+1)%len(windows)]
		}
	}
	return windows[0]
}

// buildDaysTable lists daily footprints, newest first.
func (m DashboardModel) buildDaysTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},      //nolint:mnd // Column width.
		{Title: "Transport", Width: 10}, //nolint:mnd // Column width.
		{Title: "Diet", Width: 10},      //nolint:mnd // Column width.
		{Title: "Energy", Width: 10},    //nolint:mnd // Column width.
		{Title: "Total", Width: 10},     //nolint:mnd // Column width.
		{Title: "Mood", Width: 10},      //nolint:mnd // Column width.
		{Title: "Score", Width: 6},      //nolint:mnd // Column width.
	}

	var rows []table.Row
	if m.dashboard != nil {
		days := m.dashboard.Daily
		moods := m.dashboard.Combined
		rows = make([]table.Row, 0, len(days))
		for i := len(days) - 1; i >= 0; i-- {
			d := days[i]
			mood, score := "-", "-"
			if i < len(moods) {
				mood = string(moods[i].Mood)
				score = fmt.Sprintf("%+.1f", moods[i].Sentiment)
			}
			rows = append(rows, table.Row{
				d.Date,
				greenops.FormatFloat(d.Transport, greenops.BreakdownPrecision),
				greenops.FormatFloat(d.Diet, greenops.BreakdownPrecision),
				greenops.FormatFloat(d.Energy, greenops.BreakdownPrecision),
				greenops.FormatFloat(d.Total, greenops.BreakdownPrecision),
				mood,
				score,
			})
		}
	}

	availableHeight := max(m.height-summaryHeight-1, minHeight)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(colorText).Background(colorGreen).Bold(false)
	t.SetStyles(styles)
	return t
}

// selectedDay returns the index into Daily of the highlighted row.
func (m DashboardModel) selectedDay() (int, bool) {
	if m.dashboard == nil || len(m.dashboard.Daily) == 0 {
		return 0, false
	}
	row := m.table.Cursor()
	idx := len(m.dashboard.Daily) - 1 - row
	if idx < 0 || idx >= len(m.dashboard.Daily) {
		return 0, false
	}
	return idx, true
}

// State returns the current screen.
func (m DashboardModel) State() ViewState { return m.state }

// Window returns the window being shown.
func (m DashboardModel) Window() insights.Window { return m.window }

// Err returns the fetch error that ended the session, if any.
func (m DashboardModel) Err() error { return m.err }

// Package tui implements the interactive terminal dashboard.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorGreen  = lipgloss.Color("42")
	colorOrange = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")
	colorMuted  = lipgloss.Color("240")
	colorAccent = lipgloss.Color("86")
	colorText   = lipgloss.Color("252")
)

//nolint:gochecknoglobals // Shared immutable styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	InfoStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	GoodStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	WarnStyle   = lipgloss.NewStyle().Foreground(colorOrange)
	BadStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	TabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorAccent).Underline(true)
)

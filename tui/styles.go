package tui

import (
	"github.com/charmbracelet/lipgloss"

	"hirescope/insights"
)

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorSuccess   = "#04B575"
	colorWarning   = "#FFB454"
	colorError     = "#FF5F87"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
)

// Styles for the dashboard
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginTop(1).
		MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	WarnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorWarning))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(1, 2)

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo)).
		Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary))
)

// LevelStyle maps a threshold bucket to its display style.
func LevelStyle(l insights.Level) lipgloss.Style {
	switch l {
	case insights.LevelGood:
		return StatusStyle
	case insights.LevelWarn:
		return WarnStyle
	default:
		return ErrorStyle
	}
}

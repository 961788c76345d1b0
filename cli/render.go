package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"hirescope/client"
	"hirescope/insights"
)

// One-shot report styling, same palette as the dashboard.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func levelStyle(l insights.Level) lipgloss.Style {
	switch l {
	case insights.LevelGood:
		return goodStyle
	case insights.LevelWarn:
		return warnStyle
	default:
		return badStyle
	}
}

// reportError prints empty results as an informational state and returns
// real failures for cobra to surface. Exit is non-zero only for failures.
func reportError(what string, err error) error {
	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Kind == client.KindEmpty {
		fmt.Println(infoStyle.Render(apiErr.Message))
		return nil
	}
	if logger != nil {
		logger.Warn("report failed", "report", what, "error", err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

package components

import (
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. right typically shows
// the active loan parameters.
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [e]dit params  [?]help  [q]uit"

	padding := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right + " "

	return style.Render(bar)
}

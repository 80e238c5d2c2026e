package components

import (
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs, in display order.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Composition", Key: 'c'},
	{Name: "Cumulative", Key: 'u'},
	{Name: "Schedule", Key: 's'},
	{Name: "Scenarios", Key: 'n'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	bar := " "
	for i, tab := range Tabs {
		if i > 0 {
			bar += "  "
		}
		if i == activeIdx {
			bar += activeStyle.Render(tab.Name)
			continue
		}
		// Highlight the shortcut letter inside the name when present.
		pos := keyPos(tab)
		if pos >= 0 {
			bar += inactiveStyle.Render(tab.Name[:pos]) +
				dimStyle.Render("[") + keyStyle.Render(string(tab.Name[pos])) + dimStyle.Render("]") +
				inactiveStyle.Render(tab.Name[pos+1:])
		} else {
			bar += inactiveStyle.Render(tab.Name) +
				dimStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimStyle.Render("]")
		}
	}

	rowStyle := lipgloss.NewStyle().Width(width)
	return rowStyle.Render(bar)
}

// TabVisualWidth returns the rendered width of one tab, used for mouse
// hitboxes. Must stay in sync with RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return len(tab.Name)
	}
	if keyPos(tab) >= 0 {
		return len(tab.Name) + 2 // brackets around an in-name letter
	}
	return len(tab.Name) + 3 // name plus [k]
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// keyPos finds the first occurrence of the shortcut letter in the tab
// name, ignoring case on the first letter.
func keyPos(tab Tab) int {
	lower := tab.Key
	upper := lower - 'a' + 'A'
	for i, r := range tab.Name {
		if r == lower || r == upper {
			return i
		}
	}
	return -1
}

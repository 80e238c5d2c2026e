package tui

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/cli"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderCompositionTab shows each year's payment split as a
// green/red proportion bar, with the crossover year marked.
func (a App) renderCompositionTab(cw, contentH int) string {
	t := theme.Active
	s := a.sched
	years := s.Years[1:]

	yearStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)
	// year(4) + marker(2) + percents(~16) + spacing
	barW := innerW - 26
	if barW < 10 {
		barW = 10
	}

	crossIdx := crossoverYearIndex(s.Crossover)

	var rows []string
	for i, rec := range years {
		marker := "  "
		if i == crossIdx {
			marker = markStyle.Render("◆ ")
		}
		pSeg := int(rec.PrincipalPct / 100 * float64(barW))
		if pSeg > barW {
			pSeg = barW
		}
		bar := lipgloss.NewStyle().Foreground(t.Principal).Render(strings.Repeat("█", pSeg)) +
			lipgloss.NewStyle().Foreground(t.Interest).Render(strings.Repeat("█", barW-pSeg))

		rows = append(rows, fmt.Sprintf("%s %s%s %s",
			yearStyle.Render(fmt.Sprintf("%d", rec.Year)),
			marker,
			bar,
			pctStyle.Render(fmt.Sprintf("%5.1f%% / %5.1f%%", rec.PrincipalPct, rec.InterestPct))))
	}

	// Window the rows to the visible height, honoring the scroll offset.
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}
	start := a.compScroll
	if start > len(rows)-1 {
		start = len(rows) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render("      principal share ← ■ → interest share"))
	if c := s.Crossover; c != nil {
		b.WriteString(dimStyle.Render("   ◆ crossover at "))
		b.WriteString(markStyle.Render(cli.FormatMonth(c.MonthNumber)))
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Join(rows[start:end], "\n"))
	if end < len(rows) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more (j/k to scroll)", len(rows)-end)))
	}

	return components.ContentCard("Payment Composition by Year", b.String(), cw)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/cli"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderScheduleTab shows the full yearly table, windowed to the
// visible height with the current scroll offset.
func (a App) renderScheduleTab(cw, contentH int) string {
	t := theme.Active
	s := a.sched

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	yearStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pStyle := lipgloss.NewStyle().Foreground(t.Principal)
	iStyle := lipgloss.NewStyle().Foreground(t.Interest)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	const rowFmt = "%-6s %14s %14s %14s %14s %14s"

	header := headStyle.Render(fmt.Sprintf(rowFmt,
		"Year", "Principal", "Interest", "Cum. Princ.", "Cum. Int.", "Balance"))

	eqIdx := equityYearIndex(s)

	rows := make([]string, 0, len(s.Years))
	for i, rec := range s.Years {
		yearCell := yearStyle.Render(fmt.Sprintf("%-6d", rec.Year))
		if i-1 == eqIdx && i > 0 {
			yearCell = markStyle.Render(fmt.Sprintf("%-4d ◆", rec.Year))
		}
		rows = append(rows, fmt.Sprintf("%s %s %s %s %s %s",
			yearCell,
			pStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(rec.PrincipalPaid))),
			iStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(rec.InterestPaid))),
			numStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(rec.CumulativePrincipal))),
			numStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(rec.CumulativeInterest))),
			numStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(rec.RemainingBalance)))))
	}

	visible := contentH - 7
	if visible < 3 {
		visible = 3
	}
	start := a.schedScroll
	if start > len(rows)-visible {
		start = len(rows) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")
	b.WriteString(strings.Join(rows[start:end], "\n"))
	if end < len(rows) || start > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("rows %d–%d of %d (j/k scroll, g/G jump)",
			start+1, end, len(rows))))
	}
	if eqIdx >= 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("◆ half the principal repaid"))
	}

	return components.ContentCard("Amortization Schedule", b.String(), cw)
}

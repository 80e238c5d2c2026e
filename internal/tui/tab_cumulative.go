package tui

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/cli"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderCumulativeTab shows the running principal and interest totals,
// with the equity-crossover year accented in the principal chart.
func (a App) renderCumulativeTab(cw int) string {
	t := theme.Active
	s := a.sched
	years := s.Years[1:]
	labels := yearLabels(years)

	cumPrincipal := make([]float64, len(years))
	cumInterest := make([]float64, len(years))
	for i, rec := range years {
		cumPrincipal[i] = rec.CumulativePrincipal
		cumInterest[i] = rec.CumulativeInterest
	}

	halves := components.LayoutRow(cw, 2)
	eqIdx := equityYearIndex(s)

	principalCard := components.ContentCard(
		fmt.Sprintf("Cumulative Principal (%s)", cli.FormatMoneyWhole(s.Params.Principal)),
		components.BarChart(cumPrincipal, labels, t.Principal, components.CardInnerWidth(halves[0]), 9, eqIdx),
		halves[0])

	interestCard := components.ContentCard(
		fmt.Sprintf("Cumulative Interest (%s)", cli.FormatMoneyWhole(s.Summary.TotalInterest)),
		components.BarChart(cumInterest, labels, t.Interest, components.CardInnerWidth(halves[1]), 9, -1),
		halves[1])

	var b strings.Builder
	b.WriteString(components.CardRow([]string{principalCard, interestCard}))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var note strings.Builder
	if s.EquityYear != nil {
		note.WriteString(labelStyle.Render("50% of the principal is repaid in "))
		note.WriteString(accentStyle.Render(fmt.Sprintf("%d", *s.EquityYear)))
		note.WriteString(dimStyle.Render(fmt.Sprintf("  (year %d of %d, highlighted above)",
			*s.EquityYear-s.Params.StartYear, s.Params.TermYears)))
	} else {
		note.WriteString(dimStyle.Render("The balance never falls to half the principal within the term."))
	}
	note.WriteString("\n")

	// Where the money goes over the whole term.
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 24
	if barW < 10 {
		barW = 10
	}
	interestShare := 0.0
	if s.Summary.TotalCost > 0 {
		interestShare = s.Summary.TotalInterest / s.Summary.TotalCost
	}
	note.WriteString(components.Gauge("Interest share", interestShare, t.Interest, 16, barW))

	b.WriteString(components.ContentCard("Equity Milestone", note.String(), cw))

	return b.String()
}

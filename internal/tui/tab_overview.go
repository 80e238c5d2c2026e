package tui

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/cli"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.sched
	sum := s.Summary
	var b strings.Builder

	// Row 1: headline metric cards
	efficiency := "—"
	effCaption := "interest-free"
	if sum.Efficiency > 0 {
		efficiency = cli.FormatRatio(sum.Efficiency)
		effCaption = fmt.Sprintf("interest ratio %s", cli.FormatPercent(sum.InterestRatio*100))
	}

	metrics := []components.Metric{
		{Label: "Monthly Payment", Value: cli.FormatMoney(sum.MonthlyPayment),
			Caption: fmt.Sprintf("%d payments", a.params.TotalMonths())},
		{Label: "Total Interest", Value: cli.FormatMoneyWhole(sum.TotalInterest),
			Caption: fmt.Sprintf("on %s", cli.FormatMoneyWhole(a.params.Principal))},
		{Label: "Total Cost", Value: cli.FormatMoneyWhole(sum.TotalCost),
			Caption: fmt.Sprintf("over %d years", a.params.TermYears)},
		{Label: "Efficiency", Value: efficiency, Caption: effCaption},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	years := s.Years[1:]
	labels := yearLabels(years)

	// Row 2: yearly principal/interest stacked chart
	principal := make([]float64, len(years))
	interest := make([]float64, len(years))
	for i, rec := range years {
		principal[i] = rec.PrincipalPaid
		interest[i] = rec.InterestPaid
	}
	innerW := components.CardInnerWidth(cw)
	stacked := components.StackedBarChart(principal, interest, labels, innerW, 9) + "\n" +
		components.Legend([]struct {
			Label string
			Color lipgloss.Color
		}{
			{"Principal", t.Principal},
			{"Interest", t.Interest},
		})
	b.WriteString(components.ContentCard("Yearly Principal vs Interest", stacked, cw))
	b.WriteString("\n")

	// Row 3: remaining balance (equity-crossover year accented) + milestones
	halves := components.LayoutRow(cw, 2)

	balances := make([]float64, len(years))
	for i, rec := range years {
		balances[i] = rec.RemainingBalance
	}
	balanceCard := components.ContentCard("Remaining Balance",
		components.BarChart(balances, labels, t.Balance, components.CardInnerWidth(halves[0]), 8, equityYearIndex(s)),
		halves[0])

	b.WriteString(components.CardRow([]string{balanceCard, a.milestonesCard(halves[1])}))

	return b.String()
}

func (a App) milestonesCard(w int) string {
	t := theme.Active
	s := a.sched

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	b.WriteString(labelStyle.Render("Principal > interest"))
	b.WriteString("\n")
	if c := s.Crossover; c != nil {
		b.WriteString("  " + accentStyle.Render(cli.FormatMonth(c.MonthNumber)))
		b.WriteString("\n")
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%s of the term", cli.FormatPercent(c.PercentOfTerm))))
	} else {
		b.WriteString("  " + dimStyle.Render("never within the term"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Half the principal repaid"))
	b.WriteString("\n")
	if s.EquityYear != nil {
		b.WriteString("  " + accentStyle.Render(fmt.Sprintf("%d", *s.EquityYear)))
		b.WriteString("\n")
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("year %d of %d", *s.EquityYear-s.Params.StartYear, s.Params.TermYears)))
	} else {
		b.WriteString("  " + dimStyle.Render("not reached within the term"))
	}
	b.WriteString("\n\n")

	// Share of the total cost that buys equity rather than interest.
	innerW := components.CardInnerWidth(w)
	barW := innerW - 22
	if barW < 10 {
		barW = 10
	}
	principalShare := 0.0
	if s.Summary.TotalCost > 0 {
		principalShare = s.Params.Principal / s.Summary.TotalCost
	}
	b.WriteString(components.Gauge("Principal share", principalShare, t.Principal, 16, barW))

	return components.ContentCard("Milestones", b.String(), w)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/cli"
	"github.com/Oseltamivir/Amortization-schedule/internal/model"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// scenariosState holds the Scenarios tab's cursor and the inline
// name prompt shown while saving.
type scenariosState struct {
	cursor    int
	naming    bool
	nameInput textinput.Model
}

// updateScenariosTab handles tab-local keys. Unhandled keys fall
// through to the global bindings.
func (a App) updateScenariosTab(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.scen.cursor < a.store.Len()-1 {
			a.scen.cursor++
		}
		return true, a, nil

	case "k", "up":
		if a.scen.cursor > 0 {
			a.scen.cursor--
		}
		return true, a, nil

	case "g":
		a.scen.cursor = 0
		return true, a, nil

	case "G":
		if n := a.store.Len(); n > 0 {
			a.scen.cursor = n - 1
		}
		return true, a, nil

	case "a":
		ti := textinput.New()
		ti.Placeholder = defaultScenarioName(a.params)
		ti.CharLimit = 40
		ti.Width = 40
		ti.Focus()
		a.scen.naming = true
		a.scen.nameInput = ti
		return true, a, textinput.Blink

	case "d":
		scens := a.store.All()
		if a.scen.cursor < len(scens) {
			a.store.Remove(scens[a.scen.cursor].ID)
			if a.scen.cursor >= a.store.Len() && a.scen.cursor > 0 {
				a.scen.cursor--
			}
		}
		return true, a, nil

	case "enter":
		scens := a.store.All()
		if a.scen.cursor < len(scens) {
			if p, ok := a.store.Load(scens[a.scen.cursor].ID); ok {
				a.setParams(p)
			}
		}
		return true, a, nil
	}

	return false, a, nil
}

// updateScenarioName drives the inline name prompt. Enter saves
// (placeholder name when the input is empty), esc cancels.
func (a App) updateScenarioName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(a.scen.nameInput.Value())
		if name == "" {
			name = defaultScenarioName(a.params)
		}
		a.store.Save(name, a.params, a.sched.Summary)
		a.scen.naming = false
		a.scen.cursor = a.store.Len() - 1
		return a, nil

	case "esc":
		a.scen.naming = false
		return a, nil
	}

	var cmd tea.Cmd
	a.scen.nameInput, cmd = a.scen.nameInput.Update(msg)
	return a, cmd
}

func defaultScenarioName(p model.LoanParameters) string {
	return fmt.Sprintf("%s @ %.2f%% / %dy",
		cli.FormatMoneyWhole(p.Principal), p.AnnualRatePct, p.TermYears)
}

func (a App) renderScenariosTab(cw int) string {
	t := theme.Active

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder

	if a.scen.naming {
		var prompt strings.Builder
		prompt.WriteString(labelStyle.Render("Name for this scenario"))
		prompt.WriteString("\n\n")
		prompt.WriteString(a.scen.nameInput.View())
		prompt.WriteString("\n\n")
		prompt.WriteString(dimStyle.Render("enter to save · esc to cancel"))
		b.WriteString(components.ContentCard("Save Scenario", prompt.String(), cw))
		b.WriteString("\n")
	}

	scens := a.store.All()
	if len(scens) == 0 {
		var empty strings.Builder
		empty.WriteString(labelStyle.Render("No saved scenarios yet."))
		empty.WriteString("\n\n")
		empty.WriteString(dimStyle.Render("Press [a] to save the current parameters as a scenario,"))
		empty.WriteString("\n")
		empty.WriteString(dimStyle.Render("then [e] to change them and compare."))
		b.WriteString(components.ContentCard("Scenarios", empty.String(), cw))
		return b.String()
	}

	b.WriteString(components.ContentCard("Saved Scenarios", a.scenarioList(scens, cw), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Comparison", a.scenarioComparison(scens), cw))

	return b.String()
}

func (a App) scenarioList(scens []model.Scenario, cw int) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := 28
	var rows []string
	for i, sc := range scens {
		cursor := "  "
		style := nameStyle
		if i == a.scen.cursor {
			cursor = selStyle.Render("❯ ")
			style = selStyle
		}
		meta := fmt.Sprintf("%s · %.2f%% · %dy · saved %s",
			cli.FormatMoneyWhole(sc.Params.Principal),
			sc.Params.AnnualRatePct,
			sc.Params.TermYears,
			sc.SavedAt.Format("15:04"))
		rows = append(rows, fmt.Sprintf("%s%s  %s",
			cursor,
			style.Render(fmt.Sprintf("%-*s", nameW, truncStr(sc.Name, nameW))),
			metaStyle.Render(meta)))
	}
	rows = append(rows, "")
	rows = append(rows, metaStyle.Render("j/k move · enter load · d delete · a save current"))

	return strings.Join(rows, "\n")
}

// scenarioComparison tables the saved scenarios against the live
// parameters, marking the cheapest total interest.
func (a App) scenarioComparison(scens []model.Scenario) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	curStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	bestStyle := lipgloss.NewStyle().Foreground(t.Good).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	type row struct {
		name     string
		payment  float64
		interest float64
		ratio    float64
		current  bool
	}

	rows := []row{{
		name:     "current",
		payment:  a.sched.Summary.MonthlyPayment,
		interest: a.sched.Summary.TotalInterest,
		ratio:    a.sched.Summary.InterestRatio,
		current:  true,
	}}
	for _, sc := range scens {
		rows = append(rows, row{
			name:     sc.Name,
			payment:  sc.MonthlyPayment,
			interest: sc.TotalInterest,
			ratio:    sc.InterestRatio,
		})
	}

	best := 0
	for i, r := range rows {
		if r.interest < rows[best].interest {
			best = i
		}
	}

	const nameW = 24
	header := headStyle.Render(fmt.Sprintf("%-*s %14s %16s %10s",
		nameW, "Scenario", "Monthly", "Total Interest", "Int. %"))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")
	for i, r := range rows {
		style := nameStyle
		if r.current {
			style = curStyle
		}
		interestCell := numStyle.Render(fmt.Sprintf("%16s", cli.FormatMoneyWhole(r.interest)))
		if i == best {
			interestCell = bestStyle.Render(fmt.Sprintf("%15s✓", cli.FormatMoneyWhole(r.interest)))
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			style.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.name, nameW))),
			numStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(r.payment))),
			interestCell,
			numStyle.Render(fmt.Sprintf("%9.1f%%", r.ratio*100)))
	}
	b.WriteString(dimStyle.Render("✓ lowest total interest"))

	return b.String()
}

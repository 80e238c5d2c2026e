package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formValues backs the parameter form inputs. Everything is kept as
// text; parsing and clamping happen once on submit.
type formValues struct {
	principal string
	rate      string
	term      string
	startYear string
}

func formWidth(cw int) int {
	w := cw - 8
	if w > 56 {
		w = 56
	}
	if w < 30 {
		w = 30
	}
	return w
}

func newParamForm(p model.LoanParameters, vals *formValues, width int) *huh.Form {
	vals.principal = strconv.FormatFloat(p.Principal, 'f', -1, 64)
	vals.rate = strconv.FormatFloat(p.AnnualRatePct, 'f', -1, 64)
	vals.term = strconv.Itoa(p.TermYears)
	vals.startYear = strconv.Itoa(p.StartYear)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Principal").
				Description("Loan amount; values below $1,000 are raised to the minimum").
				Value(&vals.principal).
				Validate(validNumber),
			huh.NewInput().
				Title("Annual rate (%)").
				Description("0.1 – 20").
				Value(&vals.rate).
				Validate(validNumber),
			huh.NewInput().
				Title("Term (years)").
				Description("1 – 50").
				Value(&vals.term).
				Validate(validInteger),
			huh.NewInput().
				Title("Start year").
				Description("1900 or later").
				Value(&vals.startYear).
				Validate(validInteger),
		),
	).WithWidth(width).WithShowHelp(true)
}

func validNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validInteger(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

// toParams parses the form text back into parameters. A field that
// fails to parse keeps its previous value; the result is clamped by
// the caller's setParams boundary.
func (v formValues) toParams(prev model.LoanParameters) model.LoanParameters {
	p := prev
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.principal), 64); err == nil {
		p.Principal = f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.rate), 64); err == nil {
		p.AnnualRatePct = f
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.term)); err == nil {
		p.TermYears = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.startYear)); err == nil {
		p.StartYear = n
	}
	return p
}

func (a App) startParamForm() (tea.Model, tea.Cmd) {
	a.editing = true
	a.formVals = &formValues{}
	a.form = newParamForm(a.params, a.formVals, formWidth(a.contentWidth()))
	return a, a.form.Init()
}

func (a App) updateParamForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		vals := *a.formVals
		a.setParams(vals.toParams(a.params))
		a.editing = false
		a.form = nil
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.editing = false
		a.form = nil
		return a, nil
	}

	return a, cmd
}

// Package tui provides the interactive Bubble Tea dashboard for amort.
package tui

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/amortize"
	"github.com/Oseltamivir/Amortization-schedule/internal/cli"
	"github.com/Oseltamivir/Amortization-schedule/internal/model"
	"github.com/Oseltamivir/Amortization-schedule/internal/scenario"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. All state lives here; every
// parameter change triggers a synchronous recompute before the next
// message is processed.
type App struct {
	params model.LoanParameters
	sched  amortize.Schedule
	store  *scenario.Store

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Parameter editing (huh form). formVals lives on the heap so the
	// form's value pointers survive Bubble Tea's model copies.
	form     *huh.Form
	formVals *formValues
	editing  bool

	// Per-tab state
	schedScroll int
	compScroll  int
	scen        scenariosState
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 170
	minContentHeight = 5
)

// NewApp creates the dashboard model. Parameters are clamped at this
// boundary; the schedule is computed up front so the first frame is
// already complete.
func NewApp(params model.LoanParameters) App {
	p := params.Clamped()
	return App{
		params: p,
		sched:  amortize.Compute(p),
		store:  scenario.NewStore(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// setParams installs clamped parameters and recomputes the schedule.
func (a *App) setParams(p model.LoanParameters) {
	a.params = p.Clamped()
	a.sched = amortize.Compute(a.params)
	a.schedScroll = 0
	a.compScroll = 0
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(formWidth(a.contentWidth()))
		}
		return a, nil

	case tea.MouseMsg:
		if a.editing || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scrollActive(-1)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.scrollActive(1)
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Parameter form intercepts all keys while open
		if a.editing && a.form != nil {
			return a.updateParamForm(msg)
		}

		// Scenario naming intercepts all keys while active
		if a.activeTab == tabScenarios && a.scen.naming {
			return a.updateScenarioName(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "e" {
			return a.startParamForm()
		}

		// Scrollable tabs
		switch a.activeTab {
		case tabSchedule, tabComposition:
			switch key {
			case "j", "down":
				a.scrollActive(1)
				return a, nil
			case "k", "up":
				a.scrollActive(-1)
				return a, nil
			case "g":
				a.setActiveScroll(0)
				return a, nil
			case "G":
				a.setActiveScroll(len(a.sched.Years))
				return a, nil
			}
		case tabScenarios:
			if handled, next, cmd := a.updateScenariosTab(key); handled {
				return next, cmd
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.editing && a.form != nil {
		return a.updateParamForm(msg)
	}

	return a, nil
}

// scrollActive adjusts the scroll offset of whichever tab is active.
func (a *App) scrollActive(delta int) {
	switch a.activeTab {
	case tabSchedule:
		a.schedScroll = clampScroll(a.schedScroll+delta, len(a.sched.Years))
	case tabComposition:
		a.compScroll = clampScroll(a.compScroll+delta, len(a.sched.Years))
	case tabScenarios:
		if delta > 0 && a.scen.cursor < a.store.Len()-1 {
			a.scen.cursor++
		}
		if delta < 0 && a.scen.cursor > 0 {
			a.scen.cursor--
		}
	}
}

func (a *App) setActiveScroll(v int) {
	switch a.activeTab {
	case tabSchedule:
		a.schedScroll = clampScroll(v, len(a.sched.Years))
	case tabComposition:
		a.compScroll = clampScroll(v, len(a.sched.Years))
	}
}

func clampScroll(v, n int) int {
	if v > n-1 {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  amort needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"o c u s n", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll table / move cursor"},
		{"g G", "Jump to top / bottom"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"e", "Edit loan parameters"},
		{"a", "Save current as scenario"},
		{"Enter", "Load selected scenario"},
		{"d", "Delete selected scenario"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	p := a.params
	statusRight := fmt.Sprintf("%s · %.2f%% · %dy · %d",
		cli.FormatMoneyWhole(p.Principal), p.AnnualRatePct, p.TermYears, p.StartYear)
	statusBar := components.RenderStatusBar(w, statusRight)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.editing && a.form != nil:
		content = components.ContentCard("Loan Parameters", a.form.View(), formWidth(cw)+4)
	case a.activeTab == tabOverview:
		content = a.renderOverviewTab(cw)
	case a.activeTab == tabComposition:
		content = a.renderCompositionTab(cw, contentH)
	case a.activeTab == tabCumulative:
		content = a.renderCumulativeTab(cw)
	case a.activeTab == tabSchedule:
		content = a.renderScheduleTab(cw, contentH)
	case a.activeTab == tabScenarios:
		content = a.renderScenariosTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// Tab indices, in components.Tabs order.
const (
	tabOverview = iota
	tabComposition
	tabCumulative
	tabSchedule
	tabScenarios
)

// tabAtX returns the tab index at the given X coordinate, or -1.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

// yearLabels builds X-axis labels for the post-initial schedule years.
func yearLabels(years []model.YearlyRecord) []string {
	labels := make([]string, len(years))
	for i, rec := range years {
		labels[i] = fmt.Sprintf("%d", rec.Year)
	}
	return labels
}

// crossoverYearIndex maps the crossover month to an index into the
// post-initial year series, or -1.
func crossoverYearIndex(c *model.CrossoverInfo) int {
	if c == nil {
		return -1
	}
	return (c.MonthNumber - 1) / 12
}

// equityYearIndex maps the equity-crossover calendar year to an index
// into the post-initial year series, or -1.
func equityYearIndex(s amortize.Schedule) int {
	if s.EquityYear == nil {
		return -1
	}
	return *s.EquityYear - s.Params.StartYear - 1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

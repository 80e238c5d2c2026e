package tui

import (
	"testing"

	"github.com/Oseltamivir/Amortization-schedule/internal/amortize"
	"github.com/Oseltamivir/Amortization-schedule/internal/model"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 2 // separator
		}
	}
}

func TestTabAtXMissesLeadingSpace(t *testing.T) {
	a := App{}
	if got := a.tabAtX(0); got != -1 {
		t.Errorf("tabAtX(0) = %d, want -1", got)
	}
}

func TestCrossoverYearIndex(t *testing.T) {
	cases := []struct {
		month int
		want  int
	}{
		{1, 0},
		{12, 0},
		{13, 1},
		{153, 12},
	}

	for _, c := range cases {
		ci := &model.CrossoverInfo{MonthNumber: c.month}
		if got := crossoverYearIndex(ci); got != c.want {
			t.Errorf("crossoverYearIndex(month %d) = %d, want %d", c.month, got, c.want)
		}
	}

	if got := crossoverYearIndex(nil); got != -1 {
		t.Errorf("crossoverYearIndex(nil) = %d, want -1", got)
	}
}

func TestEquityYearIndex(t *testing.T) {
	s := amortize.Compute(model.LoanParameters{
		Principal:     250000,
		AnnualRatePct: 4.5,
		TermYears:     30,
		StartYear:     2024,
	})
	if s.EquityYear == nil {
		t.Fatal("expected an equity year for the reference loan")
	}

	idx := equityYearIndex(s)
	if idx < 0 || idx >= len(s.Years)-1 {
		t.Fatalf("equity index %d out of range for %d years", idx, len(s.Years)-1)
	}
	// The index must point at the record for the equity year itself.
	if got := s.Years[idx+1].Year; got != *s.EquityYear {
		t.Errorf("index %d points at year %d, want %d", idx, got, *s.EquityYear)
	}
}

func TestSetParamsClampsAndRecomputes(t *testing.T) {
	a := NewApp(model.LoanParameters{
		Principal:     250000,
		AnnualRatePct: 4.5,
		TermYears:     30,
		StartYear:     2024,
	})
	a.schedScroll = 10

	a.setParams(model.LoanParameters{
		Principal:     500, // below minimum
		AnnualRatePct: 25,  // above maximum
		TermYears:     10,
		StartYear:     2024,
	})

	if a.params.Principal != model.MinPrincipal {
		t.Errorf("principal = %v, want clamped to %v", a.params.Principal, model.MinPrincipal)
	}
	if a.params.AnnualRatePct != model.MaxRatePct {
		t.Errorf("rate = %v, want clamped to %v", a.params.AnnualRatePct, model.MaxRatePct)
	}
	if len(a.sched.Years) != 11 {
		t.Errorf("schedule has %d year records, want 11", len(a.sched.Years))
	}
	if a.schedScroll != 0 {
		t.Error("expected scroll reset after a parameter change")
	}
}

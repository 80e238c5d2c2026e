package scenario

import (
	"testing"

	"github.com/Oseltamivir/Amortization-schedule/internal/model"
)

func params(principal float64) model.LoanParameters {
	return model.LoanParameters{Principal: principal, AnnualRatePct: 4.5, TermYears: 30, StartYear: 2024}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := NewStore()
	want := params(250000)

	sc := s.Save("baseline", want, model.Summary{MonthlyPayment: 1266.71})
	if sc.ID == "" {
		t.Fatal("saved scenario has empty ID")
	}
	if sc.Name != "baseline" {
		t.Errorf("Name = %q, want %q", sc.Name, "baseline")
	}

	got, ok := s.Load(sc.ID)
	if !ok {
		t.Fatal("Load did not find saved scenario")
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	a := s.Save("a", params(100000), model.Summary{})
	b := s.Save("b", params(200000), model.Summary{})

	if !s.Remove(a.ID) {
		t.Fatal("Remove(a) = false")
	}
	if s.Remove(a.ID) {
		t.Error("second Remove(a) = true, want false")
	}
	if s.Remove("no-such-id") {
		t.Error("Remove of unknown ID = true, want false")
	}

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if _, ok := s.Get(b.ID); !ok {
		t.Error("surviving scenario not found after Remove")
	}
}

func TestAllPreservesSaveOrder(t *testing.T) {
	s := NewStore()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		s.Save(n, params(100000), model.Summary{})
	}

	all := s.All()
	if len(all) != len(names) {
		t.Fatalf("len(All) = %d, want %d", len(all), len(names))
	}
	for i, n := range names {
		if all[i].Name != n {
			t.Errorf("All[%d].Name = %q, want %q", i, all[i].Name, n)
		}
	}

	// The returned slice is a copy; mutating it must not touch the store.
	all[0].Name = "mutated"
	if s.All()[0].Name != "first" {
		t.Error("mutation through All() leaked into the store")
	}
}

func TestIDsAreUnique(t *testing.T) {
	s := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sc := s.Save("n", params(100000), model.Summary{})
		if seen[sc.ID] {
			t.Fatalf("duplicate scenario ID %q", sc.ID)
		}
		seen[sc.ID] = true
	}
}

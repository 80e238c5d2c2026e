package amortize

import (
	"math"
	"testing"

	"github.com/Oseltamivir/Amortization-schedule/internal/model"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f (±%.4f)", name, got, want, tol)
	}
}

func TestComputeReferenceLoan(t *testing.T) {
	p := model.LoanParameters{
		Principal:     250000,
		AnnualRatePct: 4.5,
		TermYears:     30,
		StartYear:     2024,
	}
	s := Compute(p)

	approx(t, "MonthlyPayment", s.Summary.MonthlyPayment, 1266.71, 0.01)
	approx(t, "TotalInterest", s.Summary.TotalInterest, 206016, 60)
	approx(t, "TotalCost", s.Summary.TotalCost, 456016, 60)

	if len(s.Years) != p.TermYears+1 {
		t.Fatalf("len(Years) = %d, want %d", len(s.Years), p.TermYears+1)
	}

	first := s.Years[0]
	if first.Year != 2024 {
		t.Errorf("initial Year = %d, want 2024", first.Year)
	}
	if first.RemainingBalance != 250000 || first.PrincipalPaid != 0 || first.InterestPaid != 0 {
		t.Errorf("initial record has nonzero flows: %+v", first)
	}
	if first.PrincipalPct != 0 || first.InterestPct != 100 {
		t.Errorf("initial percentages = %.1f/%.1f, want 0/100", first.PrincipalPct, first.InterestPct)
	}

	last := s.Years[len(s.Years)-1]
	if last.Year != 2054 {
		t.Errorf("final Year = %d, want 2054", last.Year)
	}
	approx(t, "final balance", last.RemainingBalance, 0, 0.01)
}

func TestScheduleInvariants(t *testing.T) {
	cases := []struct {
		name string
		p    model.LoanParameters
	}{
		{"typical mortgage", model.LoanParameters{Principal: 250000, AnnualRatePct: 4.5, TermYears: 30, StartYear: 2024}},
		{"short high rate", model.LoanParameters{Principal: 50000, AnnualRatePct: 19.9, TermYears: 5, StartYear: 2020}},
		{"long low rate", model.LoanParameters{Principal: 800000, AnnualRatePct: 0.1, TermYears: 50, StartYear: 1900}},
		{"small loan", model.LoanParameters{Principal: 1000, AnnualRatePct: 8, TermYears: 1, StartYear: 2025}},
		{"zero rate", model.LoanParameters{Principal: 120000, AnnualRatePct: 0, TermYears: 10, StartYear: 2024}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Compute(tc.p)

			if len(s.Years) != tc.p.TermYears+1 {
				t.Fatalf("len(Years) = %d, want %d", len(s.Years), tc.p.TermYears+1)
			}

			// Principal repaid over the full term matches the original
			// principal within rounding tolerance.
			sumPrincipal := 0.0
			for _, rec := range s.Years {
				sumPrincipal += rec.PrincipalPaid
			}
			approx(t, "sum of principal", sumPrincipal, tc.p.Principal, 0.01*float64(tc.p.TermYears))

			for i := 1; i < len(s.Years); i++ {
				prev, cur := s.Years[i-1], s.Years[i]

				if cur.CumulativePrincipal < prev.CumulativePrincipal {
					t.Errorf("year %d: cumulative principal decreased", cur.Year)
				}
				if cur.CumulativeInterest < prev.CumulativeInterest {
					t.Errorf("year %d: cumulative interest decreased", cur.Year)
				}
				if cur.RemainingBalance > prev.RemainingBalance+1e-9 {
					t.Errorf("year %d: balance increased from %.2f to %.2f",
						cur.Year, prev.RemainingBalance, cur.RemainingBalance)
				}

				if total := cur.PrincipalPaid + cur.InterestPaid; total > 0 {
					approx(t, "percentage sum", cur.PrincipalPct+cur.InterestPct, 100, 1e-9)
				}
			}

			approx(t, "final balance", s.Years[len(s.Years)-1].RemainingBalance, 0, 0.01)
		})
	}
}

func TestZeroRateUsesLinearLimit(t *testing.T) {
	p := model.LoanParameters{Principal: 120000, AnnualRatePct: 0, TermYears: 10, StartYear: 2024}
	s := Compute(p)

	if s.Summary.MonthlyPayment != 1000 {
		t.Errorf("MonthlyPayment = %v, want exactly 1000", s.Summary.MonthlyPayment)
	}
	if s.Summary.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, want 0", s.Summary.TotalInterest)
	}
	if s.Summary.Efficiency != 0 {
		t.Errorf("Efficiency = %v, want 0 for interest-free loan", s.Summary.Efficiency)
	}

	// With no interest at all, principal wins from the first payment.
	if s.Crossover == nil || s.Crossover.MonthNumber != 1 {
		t.Fatalf("Crossover = %+v, want month 1", s.Crossover)
	}

	// Half of 120000 is repaid exactly at the end of year 5.
	if s.EquityYear == nil || *s.EquityYear != 2029 {
		t.Fatalf("EquityYear = %v, want 2029", s.EquityYear)
	}
}

func TestCrossoverBeforeMidTerm(t *testing.T) {
	p := model.LoanParameters{Principal: 250000, AnnualRatePct: 4.5, TermYears: 30, StartYear: 2024}
	s := Compute(p)

	if s.Crossover == nil {
		t.Fatal("expected a crossover for a 30y 4.5% loan")
	}
	c := s.Crossover
	if c.MonthNumber <= 0 || c.MonthNumber >= 180 {
		t.Errorf("MonthNumber = %d, want in (0, 180)", c.MonthNumber)
	}
	approx(t, "YearFraction", c.YearFraction, math.Round(float64(c.MonthNumber)/12*10)/10, 1e-9)
	approx(t, "PercentOfTerm", c.PercentOfTerm, math.Round(float64(c.MonthNumber)/360*10000)/100, 1e-9)
}

func TestEquityYearInsideTerm(t *testing.T) {
	cases := []model.LoanParameters{
		{Principal: 250000, AnnualRatePct: 4.5, TermYears: 30, StartYear: 2024},
		{Principal: 100000, AnnualRatePct: 12, TermYears: 20, StartYear: 2000},
		{Principal: 30000, AnnualRatePct: 2, TermYears: 7, StartYear: 2023},
	}
	for _, p := range cases {
		s := Compute(p)
		if s.EquityYear == nil {
			t.Errorf("%+v: no equity crossover within term", p)
			continue
		}
		eq := *s.EquityYear
		if eq <= p.StartYear+1 || eq > p.StartYear+p.TermYears {
			t.Errorf("%+v: EquityYear = %d, want in (%d, %d]",
				p, eq, p.StartYear+1, p.StartYear+p.TermYears)
		}
	}
}

func TestMonthlyPaymentDegenerateTerm(t *testing.T) {
	if got := MonthlyPayment(100000, 5, 0); got != 0 {
		t.Errorf("MonthlyPayment with zero months = %v, want 0", got)
	}
}

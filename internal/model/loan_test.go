package model

import "testing"

func TestClamped(t *testing.T) {
	cases := []struct {
		name string
		in   LoanParameters
		want LoanParameters
	}{
		{
			"in range untouched",
			LoanParameters{Principal: 250000, AnnualRatePct: 4.5, TermYears: 30, StartYear: 2024},
			LoanParameters{Principal: 250000, AnnualRatePct: 4.5, TermYears: 30, StartYear: 2024},
		},
		{
			"everything below range",
			LoanParameters{Principal: 500, AnnualRatePct: 0, TermYears: 0, StartYear: 1492},
			LoanParameters{Principal: 1000, AnnualRatePct: 0.1, TermYears: 1, StartYear: 1900},
		},
		{
			"rate and term above range",
			LoanParameters{Principal: 1e9, AnnualRatePct: 35, TermYears: 99, StartYear: 2024},
			LoanParameters{Principal: 1e9, AnnualRatePct: 20, TermYears: 50, StartYear: 2024},
		},
		{
			"negative values",
			LoanParameters{Principal: -1, AnnualRatePct: -3, TermYears: -5, StartYear: -200},
			LoanParameters{Principal: 1000, AnnualRatePct: 0.1, TermYears: 1, StartYear: 1900},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Clamped(); got != tc.want {
				t.Errorf("Clamped() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTotalMonths(t *testing.T) {
	p := LoanParameters{TermYears: 30}
	if got := p.TotalMonths(); got != 360 {
		t.Errorf("TotalMonths() = %d, want 360", got)
	}
}

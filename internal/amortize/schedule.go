// Package amortize derives a loan's full repayment profile: the fixed
// monthly payment, the year-by-year principal/interest split, and the
// two milestone metrics surfaced in the dashboard. Everything here is
// pure computation with no I/O.
package amortize

import (
	"math"

	"github.com/Oseltamivir/Amortization-schedule/internal/model"
)

// Schedule is the complete output of a single computation.
type Schedule struct {
	Params  model.LoanParameters
	Summary model.Summary

	// Years holds TermYears+1 records: the initial state at StartYear
	// followed by one record per elapsed year.
	Years []model.YearlyRecord

	// Crossover is nil when no monthly principal portion ever exceeds
	// its interest portion within the term.
	Crossover *model.CrossoverInfo

	// EquityYear is the first calendar year whose remaining balance is
	// at or below half the principal, or nil if that never happens.
	EquityYear *int
}

// MonthlyPayment returns the fixed payment for the standard annuity
// formula. The denominator vanishes as the rate approaches zero, so a
// zero rate falls back to the linear-amortization limit.
func MonthlyPayment(principal, annualRatePct float64, totalMonths int) float64 {
	if totalMonths <= 0 {
		return 0
	}
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate < 1e-12 {
		return principal / float64(totalMonths)
	}
	growth := math.Pow(1+monthlyRate, float64(totalMonths))
	return principal * monthlyRate * growth / (growth - 1)
}

// Compute builds the yearly amortization table and milestone metrics
// for the given parameters. Deterministic and side-effect free. It
// does not clamp its input; callers clamp at the boundary so the
// zero-rate limit stays reachable.
func Compute(p model.LoanParameters) Schedule {
	monthlyRate := p.AnnualRatePct / 100 / 12
	totalMonths := p.TotalMonths()
	payment := MonthlyPayment(p.Principal, p.AnnualRatePct, totalMonths)

	years := make([]model.YearlyRecord, 0, p.TermYears+1)

	// Initial state: full balance, zero flows. The 0/100 percentage
	// split is a presentational convention for the degenerate point.
	years = append(years, model.YearlyRecord{
		Year:             p.StartYear,
		RemainingBalance: p.Principal,
		InterestPct:      100,
	})

	balance := p.Principal
	cumPrincipal := 0.0
	cumInterest := 0.0
	crossoverMonth := 0

	for y := 1; y <= p.TermYears; y++ {
		yearPrincipal := 0.0
		yearInterest := 0.0

		for m := 1; m <= 12; m++ {
			interest := balance * monthlyRate
			principal := payment - interest

			// First month where the principal portion wins; checked
			// globally, first occurrence only.
			if crossoverMonth == 0 && principal > interest {
				crossoverMonth = (y-1)*12 + m
			}

			yearPrincipal += principal
			yearInterest += interest

			balance -= principal
			// Guard against floating-point overshoot on the final payment.
			if balance < 0 {
				balance = 0
			}
		}

		cumPrincipal += yearPrincipal
		cumInterest += yearInterest

		rec := model.YearlyRecord{
			Year:                p.StartYear + y,
			RemainingBalance:    balance,
			PrincipalPaid:       yearPrincipal,
			InterestPaid:        yearInterest,
			CumulativePrincipal: cumPrincipal,
			CumulativeInterest:  cumInterest,
		}
		if total := yearPrincipal + yearInterest; total > 0 {
			rec.PrincipalPct = yearPrincipal / total * 100
			rec.InterestPct = yearInterest / total * 100
		}
		years = append(years, rec)
	}

	sched := Schedule{
		Params: p,
		Years:  years,
		Summary: model.Summary{
			MonthlyPayment: payment,
			TotalInterest:  cumInterest,
			TotalCost:      p.Principal + cumInterest,
		},
	}
	if p.Principal > 0 {
		sched.Summary.InterestRatio = cumInterest / p.Principal
	}
	if cumInterest > 0 {
		sched.Summary.Efficiency = p.Principal / cumInterest
	}

	if crossoverMonth > 0 {
		sched.Crossover = &model.CrossoverInfo{
			MonthNumber:   crossoverMonth,
			YearFraction:  math.Round(float64(crossoverMonth)/12*10) / 10,
			PercentOfTerm: math.Round(float64(crossoverMonth)/float64(totalMonths)*100*100) / 100,
		}
	}

	// Equity crossover: first year at or below half the principal.
	// The initial record never qualifies since it holds the full balance.
	half := p.Principal / 2
	for _, rec := range years[1:] {
		if rec.RemainingBalance <= half {
			year := rec.Year
			sched.EquityYear = &year
			break
		}
	}

	return sched
}

// Package model defines the loan domain types shared by the calculator,
// the scenario store, and both presentation surfaces.
package model

// Parameter bounds enforced at every input boundary (flags, config,
// form submissions). Out-of-range values are clamped, never rejected.
const (
	MinPrincipal = 1000.0
	MinRatePct   = 0.1
	MaxRatePct   = 20.0
	MinTermYears = 1
	MaxTermYears = 50
	MinStartYear = 1900
)

// LoanParameters describes a fixed-rate loan. Immutable per
// calculation; changing any field means computing a fresh schedule.
type LoanParameters struct {
	Principal     float64
	AnnualRatePct float64
	TermYears     int
	StartYear     int
}

// Clamped returns a copy with every field pulled into its valid range.
func (p LoanParameters) Clamped() LoanParameters {
	if p.Principal < MinPrincipal {
		p.Principal = MinPrincipal
	}
	if p.AnnualRatePct < MinRatePct {
		p.AnnualRatePct = MinRatePct
	}
	if p.AnnualRatePct > MaxRatePct {
		p.AnnualRatePct = MaxRatePct
	}
	if p.TermYears < MinTermYears {
		p.TermYears = MinTermYears
	}
	if p.TermYears > MaxTermYears {
		p.TermYears = MaxTermYears
	}
	if p.StartYear < MinStartYear {
		p.StartYear = MinStartYear
	}
	return p
}

// TotalMonths returns the number of monthly payments over the term.
func (p LoanParameters) TotalMonths() int {
	return p.TermYears * 12
}

// YearlyRecord is one row of the amortization table. Year is a calendar
// year; the record at StartYear is the initial state with zero flows.
type YearlyRecord struct {
	Year             int
	RemainingBalance float64
	PrincipalPaid    float64
	InterestPaid     float64

	// Shares of that year's total payment, in [0, 100]. They sum to
	// 100 for every year with a nonzero payment. The initial record
	// uses the 0/100 presentational convention.
	PrincipalPct float64
	InterestPct  float64

	CumulativePrincipal float64
	CumulativeInterest  float64
}

// CrossoverInfo locates the first month whose principal portion
// exceeds its interest portion.
type CrossoverInfo struct {
	MonthNumber   int     // 1-based absolute month
	YearFraction  float64 // MonthNumber/12, one decimal
	PercentOfTerm float64 // MonthNumber/totalMonths*100, two decimals
}

// Summary holds the headline figures derived from a schedule.
type Summary struct {
	MonthlyPayment float64
	TotalInterest  float64
	TotalCost      float64 // principal + total interest
	InterestRatio  float64 // total interest / principal
	Efficiency     float64 // principal / total interest; 0 for a zero-interest loan
}

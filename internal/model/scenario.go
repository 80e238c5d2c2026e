package model

import "time"

// Scenario is a named snapshot of loan parameters plus the summary
// figures that were derived from them at save time. Scenarios are
// created whole and never mutated afterwards.
type Scenario struct {
	ID     string
	Name   string
	Params LoanParameters

	MonthlyPayment float64
	TotalInterest  float64
	InterestRatio  float64

	SavedAt time.Time
}

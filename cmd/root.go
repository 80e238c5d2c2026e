// Package cmd implements the amort CLI commands.
package cmd

import (
	"os"

	"github.com/Oseltamivir/Amortization-schedule/internal/config"
	"github.com/Oseltamivir/Amortization-schedule/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPrincipal float64
	flagRate      float64
	flagTerm      int
	flagStartYear int
)

var rootCmd = &cobra.Command{
	Use:   "amort",
	Short: "Loan Amortization Calculator",
	Long:  "Compute amortization schedules: payments, interest milestones, and scenario comparisons.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Flag defaults come from the config file, so `amort` with no
	// flags reproduces the saved loan.
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().Float64VarP(&flagPrincipal, "principal", "P", cfg.Loan.Principal, "Loan principal in dollars")
	rootCmd.PersistentFlags().Float64VarP(&flagRate, "rate", "r", cfg.Loan.AnnualRatePct, "Annual interest rate in percent")
	rootCmd.PersistentFlags().IntVarP(&flagTerm, "term", "t", cfg.Loan.TermYears, "Loan term in years")
	rootCmd.PersistentFlags().IntVarP(&flagStartYear, "start-year", "y", cfg.Loan.StartYear, "First calendar year of the loan")
}

// loanParams collects the flag values through the clamping boundary.
// Out-of-range input is silently pulled to the nearest valid value.
func loanParams() model.LoanParameters {
	return model.LoanParameters{
		Principal:     flagPrincipal,
		AnnualRatePct: flagRate,
		TermYears:     flagTerm,
		StartYear:     flagStartYear,
	}.Clamped()
}

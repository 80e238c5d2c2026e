package cmd

import (
	"fmt"

	"github.com/Oseltamivir/Amortization-schedule/internal/amortize"
	"github.com/Oseltamivir/Amortization-schedule/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Loan summary with costs and milestones",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	params := loanParams()
	sched := amortize.Compute(params)
	sum := sched.Summary

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LOAN SUMMARY  %s @ %.2f%%",
		cli.FormatMoneyWhole(params.Principal), params.AnnualRatePct)))
	fmt.Println()

	rows := [][]string{
		{"Principal", cli.FormatMoneyWhole(params.Principal)},
		{"Annual Rate", cli.FormatPercent(params.AnnualRatePct)},
		{"Term", fmt.Sprintf("%d years (%d payments)", params.TermYears, params.TotalMonths())},
		{"Start Year", fmt.Sprintf("%d", params.StartYear)},
		{"---"},
		{"Monthly Payment", cli.FormatMoney(sum.MonthlyPayment)},
		{"Total Interest", cli.FormatMoney(sum.TotalInterest)},
		{"Total Cost", cli.FormatMoney(sum.TotalCost)},
		{"Interest Share", cli.FormatPercent(sum.InterestRatio * 100)},
		{"---"},
	}

	if sum.Efficiency > 0 {
		rows = append(rows, []string{"Cost Ratio", fmt.Sprintf("%s of principal", cli.FormatRatio(sum.Efficiency))})
	} else {
		rows = append(rows, []string{"Cost Ratio", "interest-free"})
	}

	if c := sched.Crossover; c != nil {
		rows = append(rows, []string{"Crossover", fmt.Sprintf("%s, %s of term",
			cli.FormatMonth(c.MonthNumber), cli.FormatPercent(c.PercentOfTerm))})
	} else {
		rows = append(rows, []string{"Crossover", "never within the term"})
	}

	if sched.EquityYear != nil {
		rows = append(rows, []string{"Half Repaid", fmt.Sprintf("%d", *sched.EquityYear)})
	} else {
		rows = append(rows, []string{"Half Repaid", "not reached within the term"})
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Println()
	fmt.Printf("  Principal vs interest over the full term:\n")
	fmt.Printf("  %s\n", cli.RenderSplitBar(params.Principal, sum.TotalInterest, 50))
	fmt.Println()

	return nil
}

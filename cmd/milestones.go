package cmd

import (
	"fmt"

	"github.com/Oseltamivir/Amortization-schedule/internal/amortize"
	"github.com/Oseltamivir/Amortization-schedule/internal/cli"

	"github.com/spf13/cobra"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Crossover and equity milestones",
	RunE:  runMilestones,
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
}

func runMilestones(_ *cobra.Command, _ []string) error {
	params := loanParams()
	sched := amortize.Compute(params)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MILESTONES"))
	fmt.Println()

	fmt.Println("  Principal overtakes interest")
	if c := sched.Crossover; c != nil {
		fmt.Printf("    %s\n", cli.FormatMonth(c.MonthNumber))
		fmt.Printf("    %s into the term (%s of %d years)\n",
			cli.FormatPercent(c.PercentOfTerm),
			cli.FormatYearFraction(c.YearFraction),
			params.TermYears)
	} else {
		fmt.Println("    never within the term")
		fmt.Println("    every payment is mostly interest at this rate and term")
	}
	fmt.Println()

	fmt.Println("  Half the principal repaid")
	if sched.EquityYear != nil {
		fmt.Printf("    by the end of %d (year %d of %d)\n",
			*sched.EquityYear,
			*sched.EquityYear-params.StartYear,
			params.TermYears)
	} else {
		fmt.Println("    not reached within the term")
	}
	fmt.Println()

	fmt.Println("  Where every dollar goes")
	fmt.Printf("    %s\n", cli.RenderSplitBar(params.Principal, sched.Summary.TotalInterest, 50))
	fmt.Printf("    %s principal · %s interest\n",
		cli.FormatMoneyWhole(params.Principal),
		cli.FormatMoneyWhole(sched.Summary.TotalInterest))
	fmt.Println()

	return nil
}

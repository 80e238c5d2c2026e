package cmd

import (
	"fmt"

	"github.com/Oseltamivir/Amortization-schedule/internal/amortize"
	"github.com/Oseltamivir/Amortization-schedule/internal/cli"

	"github.com/spf13/cobra"
)

var flagScheduleYears int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Year-by-year amortization table",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().IntVar(&flagScheduleYears, "years", 0, "Limit output to the first N years (0 = all)")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	params := loanParams()
	sched := amortize.Compute(params)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("AMORTIZATION  %s @ %.2f%% / %dy",
		cli.FormatMoneyWhole(params.Principal), params.AnnualRatePct, params.TermYears)))
	fmt.Println()

	years := sched.Years
	truncated := 0
	if flagScheduleYears > 0 && flagScheduleYears+1 < len(years) {
		truncated = len(years) - flagScheduleYears - 1
		years = years[:flagScheduleYears+1]
	}

	var rows [][]string
	for _, rec := range years {
		year := fmt.Sprintf("%d", rec.Year)
		if sched.EquityYear != nil && rec.Year == *sched.EquityYear {
			year += " ◆"
		}
		rows = append(rows, []string{
			year,
			cli.FormatMoney(rec.PrincipalPaid),
			cli.FormatMoney(rec.InterestPaid),
			cli.FormatMoney(rec.CumulativePrincipal),
			cli.FormatMoney(rec.CumulativeInterest),
			cli.FormatMoney(rec.RemainingBalance),
		})
	}

	table := cli.Table{
		Headers: []string{"Year", "Principal", "Interest", "Cum. Princ.", "Cum. Int.", "Balance"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	if truncated > 0 {
		fmt.Printf("\n  … %d more years (rerun without --years)\n", truncated)
	}
	if sched.EquityYear != nil {
		fmt.Println("\n  ◆ half the principal repaid")
	}
	fmt.Println()

	return nil
}

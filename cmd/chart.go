package cmd

import (
	"fmt"

	"github.com/Oseltamivir/Amortization-schedule/internal/amortize"
	"github.com/Oseltamivir/Amortization-schedule/internal/cli"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Inline charts: balance curve and payment composition",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	params := loanParams()
	sched := amortize.Compute(params)
	years := sched.Years[1:]

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CHARTS  %s @ %.2f%% / %dy",
		cli.FormatMoneyWhole(params.Principal), params.AnnualRatePct, params.TermYears)))
	fmt.Println()

	balances := make([]float64, len(years))
	for i, rec := range years {
		balances[i] = rec.RemainingBalance
	}
	fmt.Printf("  Remaining balance, %d–%d:\n", years[0].Year, years[len(years)-1].Year)
	fmt.Printf("  %s\n\n", cli.RenderSparkline(balances))

	interests := make([]float64, len(years))
	for i, rec := range years {
		interests[i] = rec.InterestPaid
	}
	fmt.Println("  Interest paid per year:")
	fmt.Printf("  %s\n\n", cli.RenderSparkline(interests))

	crossIdx := -1
	if c := sched.Crossover; c != nil {
		crossIdx = (c.MonthNumber - 1) / 12
	}

	fmt.Println("  Payment composition (principal / interest):")
	for i, rec := range years {
		marker := " "
		if i == crossIdx {
			marker = "◆"
		}
		fmt.Printf("  %d %s %s %5.1f%% / %5.1f%%\n",
			rec.Year,
			marker,
			cli.RenderSplitBar(rec.PrincipalPaid, rec.InterestPaid, 40),
			rec.PrincipalPct,
			rec.InterestPct)
	}

	if c := sched.Crossover; c != nil {
		fmt.Printf("\n  ◆ principal overtakes interest at %s\n", cli.FormatMonth(c.MonthNumber))
	}
	fmt.Println()

	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/config"
	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagConfigSave  bool
	flagConfigTheme string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update saved defaults",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigSave, "save", false, "Persist the current loan flags as defaults")
	configCmd.Flags().StringVar(&flagConfigTheme, "theme", "", "Set the dashboard theme")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	changed := false
	if flagConfigSave {
		cfg.SetParams(loanParams())
		changed = true
	}
	if flagConfigTheme != "" {
		known := false
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
			if t.Name == flagConfigTheme {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown theme %q (themes: %s)", flagConfigTheme, strings.Join(names, ", "))
		}
		cfg.Appearance.Theme = flagConfigTheme
		changed = true
	}
	if changed {
		if err := config.Save(cfg); err != nil {
			return err
		}
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Loan]")
	fmt.Printf("    Principal:   $%.0f\n", cfg.Loan.Principal)
	fmt.Printf("    Annual rate: %.2f%%\n", cfg.Loan.AnnualRatePct)
	fmt.Printf("    Term:        %d years\n", cfg.Loan.TermYears)
	fmt.Printf("    Start year:  %d\n", cfg.Loan.StartYear)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `amort config --save` to store the current flags as defaults.")
	return nil
}

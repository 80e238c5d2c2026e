// Package config persists user preferences: the default loan
// parameters and the dashboard theme. Saved scenarios deliberately do
// not live here; they are in-memory only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Oseltamivir/Amortization-schedule/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all amort configuration.
type Config struct {
	Loan       LoanConfig       `toml:"loan"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// LoanConfig holds the default loan parameters used when no flags are given.
type LoanConfig struct {
	Principal     float64 `toml:"principal"`
	AnnualRatePct float64 `toml:"annual_rate_pct"`
	TermYears     int     `toml:"term_years"`
	StartYear     int     `toml:"start_year"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Loan: LoanConfig{
			Principal:     250000,
			AnnualRatePct: 4.5,
			TermYears:     30,
			StartYear:     2024,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "amort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "amort")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Loan values pass through the same clamping boundary as interactive
// input, so a hand-edited file can never produce out-of-range defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Loan = clampLoan(cfg.Loan)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Params converts the loan section to calculator parameters.
func (c Config) Params() model.LoanParameters {
	return model.LoanParameters{
		Principal:     c.Loan.Principal,
		AnnualRatePct: c.Loan.AnnualRatePct,
		TermYears:     c.Loan.TermYears,
		StartYear:     c.Loan.StartYear,
	}
}

// SetParams installs loan parameters into the loan section.
func (c *Config) SetParams(p model.LoanParameters) {
	c.Loan = LoanConfig{
		Principal:     p.Principal,
		AnnualRatePct: p.AnnualRatePct,
		TermYears:     p.TermYears,
		StartYear:     p.StartYear,
	}
}

func clampLoan(l LoanConfig) LoanConfig {
	p := model.LoanParameters{
		Principal:     l.Principal,
		AnnualRatePct: l.AnnualRatePct,
		TermYears:     l.TermYears,
		StartYear:     l.StartYear,
	}.Clamped()
	return LoanConfig{
		Principal:     p.Principal,
		AnnualRatePct: p.AnnualRatePct,
		TermYears:     p.TermYears,
		StartYear:     p.StartYear,
	}
}

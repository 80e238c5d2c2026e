package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Loan = LoanConfig{Principal: 480000, AnnualRatePct: 3.1, TermYears: 25, StartYear: 2026}
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadClampsOutOfRangeLoanValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	raw := `[loan]
principal = 12.0
annual_rate_pct = 99.0
term_years = 200
start_year = 1776
`
	if err := os.MkdirAll(filepath.Join(dir, "amort"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "amort", "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := LoanConfig{Principal: 1000, AnnualRatePct: 20, TermYears: 50, StartYear: 1900}
	if cfg.Loan != want {
		t.Errorf("clamped loan = %+v, want %+v", cfg.Loan, want)
	}
}

func TestParamsRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Params()
	var other Config
	other.SetParams(p)
	if other.Loan != cfg.Loan {
		t.Errorf("SetParams(Params()) = %+v, want %+v", other.Loan, cfg.Loan)
	}
}

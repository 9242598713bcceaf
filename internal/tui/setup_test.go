package tui

import (
	"errors"
	"testing"

	"github.com/theirongolddev/sipdash/internal/config"
	"github.com/theirongolddev/sipdash/internal/tui/theme"
)

func TestSetupValuesRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	got, err := newSetupValues(cfg).apply(cfg)
	if err != nil {
		t.Fatalf("apply defaults: %v", err)
	}
	if got != cfg {
		t.Fatalf("apply(defaults) changed config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestSetupValuesApply(t *testing.T) {
	defer theme.SetActive("violet")

	vals := newSetupValues(config.DefaultConfig())
	vals.months = " 12 "
	vals.investment = "5000"
	vals.monthly = "700"
	vals.name = "Asha Rao"
	vals.theme = "tokyo-night"

	got, err := vals.apply(config.DefaultConfig())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Scheme.MonthsEnrolled != 12 || got.Scheme.MonthlyInvestment != 5000 || got.Scheme.MonthlyReturn != 700 {
		t.Fatalf("scheme = %+v", got.Scheme)
	}
	if got.Profile.Name != "Asha Rao" {
		t.Fatalf("name = %q", got.Profile.Name)
	}
	if theme.Active.Name != "tokyo-night" {
		t.Fatalf("active theme = %q", theme.Active.Name)
	}
}

func TestSetupValuesRejectInvalid(t *testing.T) {
	vals := newSetupValues(config.DefaultConfig())
	vals.investment = "0"
	if _, err := vals.apply(config.DefaultConfig()); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("zero investment: err = %v, want ErrInvalid", err)
	}

	vals = newSetupValues(config.DefaultConfig())
	vals.months = "seven"
	if _, err := vals.apply(config.DefaultConfig()); err == nil {
		t.Fatal("non-numeric months accepted")
	}
}

func TestSetupValidators(t *testing.T) {
	tests := []struct {
		in       string
		nonNeg   bool
		positive bool
	}{
		{"0", true, false},
		{"15", true, true},
		{"-1", false, false},
		{"abc", false, false},
		{" 7 ", true, true},
	}
	for _, tt := range tests {
		if got := nonNegativeInt(tt.in) == nil; got != tt.nonNeg {
			t.Errorf("nonNegativeInt(%q) ok = %v, want %v", tt.in, got, tt.nonNeg)
		}
		if got := positiveInt(tt.in) == nil; got != tt.positive {
			t.Errorf("positiveInt(%q) ok = %v, want %v", tt.in, got, tt.positive)
		}
	}
}

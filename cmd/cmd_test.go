package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/sipdash/internal/config"
)

// run executes the root command with args against an empty config dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeriesCSV(t *testing.T) {
	out, err := run(t, "series", "--format", "csv", "-n", "2")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	for _, want := range []string{"1,Jan,2200,6000,8200", "2,Feb,4400,12000,16400"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Mar") {
		t.Errorf("series printed more than 2 months:\n%s", out)
	}
}

func TestSeriesUnknownFormat(t *testing.T) {
	if _, err := run(t, "series", "--format", "xml", "-n", "7"); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestSummaryDefaults(t *testing.T) {
	out, err := run(t, "summary", "-n", "7")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"₹57,400", "273%", "₹15,400"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	out, err := run(t, "series", "--format", "csv", "-n", "1", "--investment", "1000", "--return", "50")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if !strings.Contains(out, "1,Jan,1000,50,1050") {
		t.Fatalf("flag overrides not applied:\n%s", out)
	}
	// Reset for later tests that rely on the defaults.
	if _, err := run(t, "series", "--format", "csv", "-n", "1", "--investment", "2200", "--return", "6000"); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func TestNegativeMonthsRejected(t *testing.T) {
	_, err := run(t, "summary", "--months=-1")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestOverflowingRateRejected(t *testing.T) {
	_, err := run(t, "summary", "--months=7", "--investment=9223372036854775807")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

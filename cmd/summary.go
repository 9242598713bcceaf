package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/sipdash/internal/cli"
	"github.com/theirongolddev/sipdash/internal/money"
	"github.com/theirongolddev/sipdash/internal/projection"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the scheme's current totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scheme := cfg.SchemeModel()
	series := projection.ProjectScheme(scheme)
	sum := projection.Summarize(series)
	cur := money.New(cfg.Display.Currency, cfg.Display.Locale)

	logger.WithFields(logrus.Fields{
		"periods":  scheme.Periods,
		"currency": cur.Code,
	}).Debug("summary computed")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("INVESTOR DASHBOARD  "+cli.FormatPeriods(scheme.Periods)))
	fmt.Fprintln(out)
	cli.WriteSummary(out, scheme, sum, cfg.AccountModel(), cur)

	if !sum.ReturnPercentOK {
		fmt.Fprintln(out, "\n  Nothing invested yet.")
	}
	return nil
}

package cmd

import (
	"os"

	"github.com/theirongolddev/sipdash/internal/cli"
	"github.com/theirongolddev/sipdash/internal/money"
	"github.com/theirongolddev/sipdash/internal/projection"

	"github.com/spf13/cobra"
)

var flagFormat string

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Print the month-by-month projection",
	Long:  "Print cumulative invested and returned amounts for every enrolled month.",
	RunE:  runSeries,
}

func init() {
	seriesCmd.Flags().StringVarP(&flagFormat, "format", "f", cli.FormatTable, "Output format: table, csv, markdown, json")
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	series := projection.ProjectScheme(cfg.SchemeModel())
	cur := money.New(cfg.Display.Currency, cfg.Display.Locale)

	logger.WithField("rows", len(series)).Debug("series projected")

	return cli.WriteSeries(cmd.OutOrStdout(), series, cur, flagFormat)
}

// Package cmd implements the sipdash CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/sipdash/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagMonths     int
	flagInvestment int64
	flagReturn     int64
	flagLogLevel   string
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:           "sipdash",
	Short:         "Investor dashboard for a monthly investment scheme",
	Long:          "Project a monthly investment scheme and browse it in an interactive terminal dashboard.",
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Months enrolled (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagInvestment, "investment", 0, "Monthly investment amount (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagReturn, "return", 0, "Monthly return amount (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
}

// loadConfig reads config.toml and the environment, then applies any
// scheme flags given on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("months") {
		cfg.Scheme.MonthsEnrolled = flagMonths
	}
	if flags.Changed("investment") {
		cfg.Scheme.MonthlyInvestment = flagInvestment
	}
	if flags.Changed("return") {
		cfg.Scheme.MonthlyReturn = flagReturn
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. With --log-file set, output goes to
// that file as JSON; otherwise to fallback as text.
func newLogger(fallback io.Writer) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if flagLogFile == "" {
		logger.SetOutput(fallback)
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, f.Close, nil
}

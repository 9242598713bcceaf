package cmd

import (
	"fmt"

	"github.com/theirongolddev/sipdash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Scheme]")
	fmt.Fprintf(out, "    Months enrolled:    %d\n", cfg.Scheme.MonthsEnrolled)
	fmt.Fprintf(out, "    Monthly investment: %d\n", cfg.Scheme.MonthlyInvestment)
	fmt.Fprintf(out, "    Monthly return:     %d\n", cfg.Scheme.MonthlyReturn)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Account]")
	fmt.Fprintf(out, "    Withdrawable:       %d\n", cfg.Account.WithdrawableBalance)
	fmt.Fprintf(out, "    Next due date:      %s\n", cfg.Account.NextDueDate)
	fmt.Fprintf(out, "    Next due amount:    %d\n", cfg.Account.NextDueAmount)
	fmt.Fprintf(out, "    Processing time:    %s\n", cfg.Account.WithdrawalProcessing)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Profile]")
	fmt.Fprintf(out, "    Name:  %s <%s>\n", cfg.Profile.Name, cfg.Profile.Email)
	fmt.Fprintf(out, "    Plan:  %s since %s\n", cfg.Profile.Plan, cfg.Profile.MemberSince)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Currency: %s (%s)\n", cfg.Display.Currency, cfg.Display.Locale)
	fmt.Fprintf(out, "    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `sipdash setup` to reconfigure.")
	return nil
}

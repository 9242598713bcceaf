package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/sipdash/internal/config"
	"github.com/theirongolddev/sipdash/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Seed from the file alone so SIPDASH_* overrides are not persisted.
	cfg, err := config.Stored()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cfg, err = tui.RunSetup(cfg)
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled; nothing saved.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `sipdash setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}

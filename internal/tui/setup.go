package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/sipdash/internal/config"
	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw form answers before they are applied to a Config.
type setupValues struct {
	months     string
	investment string
	monthly    string
	withdraw   string
	dueDate    string
	dueAmount  string
	name       string
	email      string
	currency   string
	theme      string
}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		months:     strconv.Itoa(cfg.Scheme.MonthsEnrolled),
		investment: strconv.FormatInt(cfg.Scheme.MonthlyInvestment, 10),
		monthly:    strconv.FormatInt(cfg.Scheme.MonthlyReturn, 10),
		withdraw:   strconv.FormatInt(cfg.Account.WithdrawableBalance, 10),
		dueDate:    cfg.Account.NextDueDate,
		dueAmount:  strconv.FormatInt(cfg.Account.NextDueAmount, 10),
		name:       cfg.Profile.Name,
		email:      cfg.Profile.Email,
		currency:   cfg.Display.Currency,
		theme:      cfg.Appearance.Theme,
	}
}

func nonNegativeInt(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func positiveInt(s string) error {
	if err := nonNegativeInt(s); err != nil {
		return err
	}
	if n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64); n == 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to sipdash").
				Description("Describe your investment scheme. Everything stays on this machine."),
			huh.NewInput().Title("Months enrolled").Value(&vals.months).Validate(nonNegativeInt),
			huh.NewInput().Title("Monthly investment").Value(&vals.investment).Validate(positiveInt),
			huh.NewInput().Title("Monthly return").Value(&vals.monthly).Validate(positiveInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Available for withdrawal").Value(&vals.withdraw).Validate(nonNegativeInt),
			huh.NewInput().Title("Next due date").Placeholder("6th February 2025").Value(&vals.dueDate),
			huh.NewInput().Title("Next installment amount").Value(&vals.dueAmount).Validate(nonNegativeInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&vals.name),
			huh.NewInput().Title("Email").Value(&vals.email),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions("INR", "USD", "EUR", "GBP", "JPY")...).
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeCharm())
}

// apply copies the answers onto cfg and validates the result.
func (v setupValues) apply(cfg config.Config) (config.Config, error) {
	ints := []struct {
		raw string
		dst *int64
	}{
		{v.investment, &cfg.Scheme.MonthlyInvestment},
		{v.monthly, &cfg.Scheme.MonthlyReturn},
		{v.withdraw, &cfg.Account.WithdrawableBalance},
		{v.dueAmount, &cfg.Account.NextDueAmount},
	}
	for _, f := range ints {
		n, err := strconv.ParseInt(strings.TrimSpace(f.raw), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parsing %q: %w", f.raw, err)
		}
		*f.dst = n
	}

	months, err := strconv.Atoi(strings.TrimSpace(v.months))
	if err != nil {
		return cfg, fmt.Errorf("parsing months %q: %w", v.months, err)
	}
	cfg.Scheme.MonthsEnrolled = months

	cfg.Account.NextDueDate = strings.TrimSpace(v.dueDate)
	cfg.Profile.Name = strings.TrimSpace(v.name)
	cfg.Profile.Email = strings.TrimSpace(v.email)
	if v.currency != "" {
		cfg.Display.Currency = v.currency
	}
	if v.theme != "" {
		cfg.Appearance.Theme = v.theme
		theme.SetActive(v.theme)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RunSetup shows the interactive setup form seeded from cfg and returns
// the updated configuration. Aborting returns huh.ErrUserAborted.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := newSetupValues(cfg)
	if err := newSetupForm(&vals).Run(); err != nil {
		return cfg, err
	}
	return vals.apply(cfg)
}

// Package config loads the dashboard's static scenario from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/theirongolddev/sipdash/internal/model"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all sipdash configuration.
type Config struct {
	Scheme     SchemeConfig     `toml:"scheme"`
	Account    AccountConfig    `toml:"account"`
	Profile    ProfileConfig    `toml:"profile"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// SchemeConfig drives the series projection.
type SchemeConfig struct {
	MonthsEnrolled    int   `toml:"months_enrolled"`
	MonthlyInvestment int64 `toml:"monthly_investment"`
	MonthlyReturn     int64 `toml:"monthly_return"`
}

// AccountConfig holds the balances shown on the cards and panels.
type AccountConfig struct {
	WithdrawableBalance  int64  `toml:"withdrawable_balance"`
	NextDueDate          string `toml:"next_due_date"`
	NextDueAmount        int64  `toml:"next_due_amount"`
	WithdrawalProcessing string `toml:"withdrawal_processing"`
}

// ProfileConfig is the identity shown in the profile panel.
type ProfileConfig struct {
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	MemberSince string `toml:"member_since"`
	Plan        string `toml:"plan"`
	Referrals   int    `toml:"referrals"`
}

// DisplayConfig controls currency formatting.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Locale   string `toml:"locale"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// envOverrides are applied on top of the file. Unset variables leave fields nil.
type envOverrides struct {
	Months            *int    `env:"SIPDASH_MONTHS"`
	MonthlyInvestment *int64  `env:"SIPDASH_MONTHLY_INVESTMENT"`
	MonthlyReturn     *int64  `env:"SIPDASH_MONTHLY_RETURN"`
	Theme             *string `env:"SIPDASH_THEME"`
	Currency          *string `env:"SIPDASH_CURRENCY"`
	Locale            *string `env:"SIPDASH_LOCALE"`
}

// DefaultConfig returns the built-in scenario.
func DefaultConfig() Config {
	return Config{
		Scheme: SchemeConfig{
			MonthsEnrolled:    7,
			MonthlyInvestment: 2200,
			MonthlyReturn:     6000,
		},
		Account: AccountConfig{
			WithdrawableBalance:  57400,
			NextDueDate:          "6th February 2025",
			NextDueAmount:        2200,
			WithdrawalProcessing: "30-40 Business Days",
		},
		Profile: ProfileConfig{
			Name:        "John Doe",
			Email:       "john.doe@example.com",
			MemberSince: "January 2024",
			Plan:        "Premium",
			Referrals:   5,
		},
		Display: DisplayConfig{
			Currency: "INR",
			Locale:   "en-IN",
		},
		Appearance: AppearanceConfig{
			Theme: "violet",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sipdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sipdash")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides and validates the result.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Stored returns what is saved on disk (or the defaults), without
// environment overrides. Use it when the result will be written back.
func Stored() (Config, error) {
	return StoredFile(Path())
}

// StoredFile is Stored for an explicit path.
func StoredFile(path string) (Config, error) {
	return readFile(path)
}

func readFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config location
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if ov.Months != nil {
		cfg.Scheme.MonthsEnrolled = *ov.Months
	}
	if ov.MonthlyInvestment != nil {
		cfg.Scheme.MonthlyInvestment = *ov.MonthlyInvestment
	}
	if ov.MonthlyReturn != nil {
		cfg.Scheme.MonthlyReturn = *ov.MonthlyReturn
	}
	if ov.Theme != nil {
		cfg.Appearance.Theme = *ov.Theme
	}
	if ov.Currency != nil {
		cfg.Display.Currency = *ov.Currency
	}
	if ov.Locale != nil {
		cfg.Display.Locale = *ov.Locale
	}
	return nil
}

// Upper bounds keep every cumulative amount (months * rate) well inside int64.
const (
	MaxMonths = 1200
	MaxAmount = 1_000_000_000_000
)

// Validate checks the numeric ranges of the scenario.
func (c Config) Validate() error {
	switch {
	case c.Scheme.MonthsEnrolled < 0 || c.Scheme.MonthsEnrolled > MaxMonths:
		return fmt.Errorf("%w: months_enrolled must be in [0, %d], got %d", ErrInvalid, MaxMonths, c.Scheme.MonthsEnrolled)
	case c.Scheme.MonthlyInvestment <= 0 || c.Scheme.MonthlyInvestment > MaxAmount:
		return fmt.Errorf("%w: monthly_investment must be in (0, %d], got %d", ErrInvalid, int64(MaxAmount), c.Scheme.MonthlyInvestment)
	case c.Scheme.MonthlyReturn <= 0 || c.Scheme.MonthlyReturn > MaxAmount:
		return fmt.Errorf("%w: monthly_return must be in (0, %d], got %d", ErrInvalid, int64(MaxAmount), c.Scheme.MonthlyReturn)
	case c.Account.WithdrawableBalance < 0 || c.Account.WithdrawableBalance > MaxAmount:
		return fmt.Errorf("%w: withdrawable_balance must be in [0, %d]", ErrInvalid, int64(MaxAmount))
	case c.Account.NextDueAmount < 0 || c.Account.NextDueAmount > MaxAmount:
		return fmt.Errorf("%w: next_due_amount must be in [0, %d]", ErrInvalid, int64(MaxAmount))
	}
	return nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// SchemeModel returns the projection inputs.
func (c Config) SchemeModel() model.Scheme {
	return model.Scheme{
		Periods:           c.Scheme.MonthsEnrolled,
		MonthlyInvestment: c.Scheme.MonthlyInvestment,
		MonthlyReturn:     c.Scheme.MonthlyReturn,
	}
}

// AccountModel returns the static balances.
func (c Config) AccountModel() model.Account {
	return model.Account{
		WithdrawableBalance:  c.Account.WithdrawableBalance,
		NextDueDate:          c.Account.NextDueDate,
		NextDueAmount:        c.Account.NextDueAmount,
		WithdrawalProcessing: c.Account.WithdrawalProcessing,
	}
}

// ProfileModel returns the investor identity.
func (c Config) ProfileModel() model.Profile {
	return model.Profile{
		Name:        c.Profile.Name,
		Email:       c.Profile.Email,
		MemberSince: c.Profile.MemberSince,
		Plan:        c.Profile.Plan,
		Referrals:   c.Profile.Referrals,
	}
}

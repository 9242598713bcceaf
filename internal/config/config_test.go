package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scheme]\nmonths_enrolled = 12\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Scheme.MonthsEnrolled)
	assert.Equal(t, int64(2200), cfg.Scheme.MonthlyInvestment)
	assert.Equal(t, "John Doe", cfg.Profile.Name)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scheme\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("SIPDASH_MONTHS", "3")
	t.Setenv("SIPDASH_MONTHLY_RETURN", "1000")
	t.Setenv("SIPDASH_THEME", "terminal")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scheme.MonthsEnrolled)
	assert.Equal(t, int64(1000), cfg.Scheme.MonthlyReturn)
	assert.Equal(t, int64(2200), cfg.Scheme.MonthlyInvestment)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
}

func TestLoadFile_BadEnvValue(t *testing.T) {
	t.Setenv("SIPDASH_MONTHS", "seven")
	_, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative months", func(c *Config) { c.Scheme.MonthsEnrolled = -1 }},
		{"zero investment", func(c *Config) { c.Scheme.MonthlyInvestment = 0 }},
		{"negative return", func(c *Config) { c.Scheme.MonthlyReturn = -5 }},
		{"negative balance", func(c *Config) { c.Account.WithdrawableBalance = -1 }},
		{"negative due", func(c *Config) { c.Account.NextDueAmount = -1 }},
		{"too many months", func(c *Config) { c.Scheme.MonthsEnrolled = MaxMonths + 1 }},
		{"huge investment", func(c *Config) { c.Scheme.MonthlyInvestment = math.MaxInt64 }},
		{"huge return", func(c *Config) { c.Scheme.MonthlyReturn = MaxAmount + 1 }},
		{"huge balance", func(c *Config) { c.Account.WithdrawableBalance = math.MaxInt64 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	zero := DefaultConfig()
	zero.Scheme.MonthsEnrolled = 0
	assert.NoError(t, zero.Validate())

	edge := DefaultConfig()
	edge.Scheme.MonthsEnrolled = MaxMonths
	edge.Scheme.MonthlyInvestment = MaxAmount
	edge.Scheme.MonthlyReturn = MaxAmount
	require.NoError(t, edge.Validate())
	// The largest allowed scheme must not overflow when summed.
	assert.Positive(t, int64(edge.Scheme.MonthsEnrolled)*(edge.Scheme.MonthlyInvestment+edge.Scheme.MonthlyReturn))
}

func TestStoredFile_IgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scheme]\nmonths_enrolled = 4\n"), 0o600))
	t.Setenv("SIPDASH_MONTHS", "99")
	t.Setenv("SIPDASH_THEME", "terminal")

	stored, err := StoredFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Scheme.MonthsEnrolled)
	assert.Equal(t, "violet", stored.Appearance.Theme)

	effective, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 99, effective.Scheme.MonthsEnrolled)
	assert.Equal(t, "terminal", effective.Appearance.Theme)
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Scheme.MonthsEnrolled = 24
	cfg.Appearance.Theme = "tokyo-night"

	require.NoError(t, SaveFile(path, cfg))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "sipdash", "config.toml"), Path())
	assert.False(t, Exists())
}

func TestModels(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.SchemeModel()
	assert.Equal(t, 7, s.Periods)
	assert.Equal(t, int64(6000), s.MonthlyReturn)

	a := cfg.AccountModel()
	assert.Equal(t, int64(57400), a.WithdrawableBalance)
	assert.Equal(t, "6th February 2025", a.NextDueDate)

	p := cfg.ProfileModel()
	assert.Equal(t, 5, p.Referrals)
}

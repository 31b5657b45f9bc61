package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomood/ecomood/internal/config"
)

// isolateHome points ECOMOOD_HOME at a fresh directory and clears overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvJournal, "")
	t.Setenv(config.EnvOutput, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func TestNew_Defaults(t *testing.T) {
	home := isolateHome(t)

	cfg := config.New()
	assert.Equal(t, config.SchemaVersion, cfg.Version)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "7d", cfg.Dashboard.Window)
	assert.False(t, cfg.Budget.IsEnabled())
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.Path())

	journal, err := cfg.JournalPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "journal.yaml"), journal)

	require.NoError(t, cfg.Validate())
}

func TestNew_FileAndEnvironment(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: json
dashboard:
  window: 30d
  strict: true
budget:
  daily_kg: 9.5
`), 0o600))
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvJournal, "/tmp/elsewhere.yaml")

	cfg := config.New()
	assert.Equal(t, config.FormatJSON, cfg.Output.DefaultFormat)
	assert.Zero(t, cfg.Output.Precision, "section replaced as a whole")
	assert.Equal(t, "30d", cfg.Dashboard.Window)
	assert.True(t, cfg.Dashboard.Strict)
	assert.InDelta(t, 9.5, cfg.Budget.DailyKg, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/elsewhere.yaml", cfg.Journal.Path)
}

func TestNew_CorruptFileFallsBackToDefaults(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output: [unclosed"), 0o600))

	cfg := config.New()
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
}

func TestSaveAndLoad(t *testing.T) {
	isolateHome(t)

	cfg := config.New()
	require.NoError(t, cfg.Set("budget.daily_kg", "12"))
	require.NoError(t, cfg.Set("output.default_format", "JSON"))
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(cfg.Path())
	require.NoError(t, err)
	assert.InDelta(t, 12.0, loaded.Budget.DailyKg, 1e-9)
	assert.Equal(t, config.FormatJSON, loaded.Output.DefaultFormat)
}

func TestGetSet(t *testing.T) {
	cfg := config.Default()

	for _, key := range config.Keys() {
		_, err := cfg.Get(key)
		require.NoError(t, err, key)
	}

	require.NoError(t, cfg.Set("dashboard.strict", "true"))
	got, err := cfg.Get("dashboard.strict")
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	require.Error(t, cfg.Set("dashboard.strict", "perhaps"))
	require.Error(t, cfg.Set("output.precision", "two"))
	require.ErrorIs(t, cfg.Set("plugins.aws", "x"), config.ErrUnknownKey)

	_, err = cfg.Get("nope")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty version is current", mutate: func(c *config.Config) { c.Version = "" }},
		{name: "newer minor version", mutate: func(c *config.Config) { c.Version = "1.4.0" }},
		{name: "next major version", mutate: func(c *config.Config) { c.Version = "2.0.0" },
			wantErr: config.ErrUnsupportedVersion},
		{name: "garbage version", mutate: func(c *config.Config) { c.Version = "one" },
			wantErr: config.ErrUnsupportedVersion},
		{name: "bad format", mutate: func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: config.ErrInvalidFormat},
		{name: "bad precision", mutate: func(c *config.Config) { c.Output.Precision = 9 },
			wantErr: config.ErrInvalidPrecision},
		{name: "bad window", mutate: func(c *config.Config) { c.Dashboard.Window = "1y" },
			wantErr: config.ErrInvalidWindow},
		{name: "bad log level", mutate: func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: config.ErrInvalidLogLevel},
		{name: "negative budget", mutate: func(c *config.Config) { c.Budget.DailyKg = -1 },
			wantErr: config.ErrBudgetNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)

	lc.File = "/tmp/ecomood.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/ecomood.log", got.File)
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)
	t.Setenv(config.EnvOutput, "json")

	assert.Equal(t, config.FormatJSON, config.GetDefaultOutputFormat())
	assert.Same(t, config.GetGlobalConfig(), config.GetGlobalConfig())

	config.ResetGlobalConfigForTest()
	t.Setenv(config.EnvOutput, "")
	assert.Equal(t, config.FormatTable, config.GetDefaultOutputFormat())
}

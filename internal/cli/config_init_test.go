package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomood/ecomood/internal/config"
)

func TestConfigInit_CreatesConfigAndGitignore(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")
	assert.Contains(t, out, "Created .gitignore")

	cfg, err := config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Output, cfg.Output)
	assert.Equal(t, "7d", cfg.Dashboard.Window)

	data, err := os.ReadFile(filepath.Join(home, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))
}

func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	home := setupCLITest(t)

	_, _, err := executeCmd(t, "config", "init")
	require.NoError(t, err)

	_, _, err = executeCmd(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	custom := []byte("# keep me\n")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitignore"), custom, 0o600))

	out, _, err := executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, out, "Created .gitignore")

	data, err := os.ReadFile(filepath.Join(home, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, custom, data, "an existing .gitignore is never overwritten")
}

func TestConfigSetGet(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := executeCmd(t, "config", "set", "budget.daily_kg", "12.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set budget.daily_kg = 12.5")

	config.ResetGlobalConfigForTest()
	out, _, err = executeCmd(t, "config", "get", "budget.daily_kg")
	require.NoError(t, err)
	assert.Equal(t, "12.5\n", out)

	cfg, err := config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.InDelta(t, 12.5, cfg.Budget.DailyKg, 1e-9)
}

func TestConfigSet_DoesNotPersistEnvironment(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv(config.EnvOutput, "json")

	_, _, err := executeCmd(t, "config", "set", "dashboard.window", "30d")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "30d", cfg.Dashboard.Window)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
}

func TestConfigSet_Rejected(t *testing.T) {
	home := setupCLITest(t)

	_, _, err := executeCmd(t, "config", "set", "output.precision", "9")
	require.ErrorIs(t, err, config.ErrInvalidPrecision)

	_, _, err = executeCmd(t, "config", "set", "dashboard.window", "14d")
	require.ErrorIs(t, err, config.ErrInvalidWindow)

	_, _, err = executeCmd(t, "config", "set", "plugins.aws", "on")
	require.ErrorIs(t, err, config.ErrUnknownKey)

	_, _, err = executeCmd(t, "config", "set", "budget.daily_kg", "twelve")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(home, "config.yaml"))
	assert.True(t, os.IsNotExist(statErr), "rejected values are never saved")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	_, _, err := executeCmd(t, "config", "get", "nope")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "dashboard.window")

	out, _, err = executeCmd(t, "config", "list", "-o", "json")
	require.NoError(t, err)

	var entries []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(config.Keys()))
	for i, key := range config.Keys() {
		assert.Equal(t, key, entries[i].Key)
	}
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := executeCmd(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "No daily budget configured")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("budget:\n  daily_kg: 10\n  alerts: [50]\n"), 0o600))
	out, _, err = executeCmd(t, "config", "validate", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily budget: 10 kg CO2e")
	assert.Contains(t, out, "Alert thresholds: 50")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("dashboard:\n  window: 5d\n"), 0o600))
	_, _, err = executeCmd(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidWindow)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output: ["), 0o600))
	_, _, err = executeCmd(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

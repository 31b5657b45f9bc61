package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(EnvHome, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutput, "")
	t.Cleanup(ResetGlobalConfigForTest)
	return home
}

func TestGlobalConfig(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestConfigGetters(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()
	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = FormatJSON
	cfg.Output.Precision = 4
	cfg.Logging.Level = "debug"

	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())
	assert.Equal(t, 4, GetOutputPrecision())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestEnsureConfigDir(t *testing.T) {
	home := stubHome(t)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(filepath.Join(home, ".ecomood"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	stubHome(t)
	tmpDir := t.TempDir()

	ResetGlobalConfigForTest()
	GetGlobalConfig().Logging.File = filepath.Join(tmpDir, "logs", "subdir", "ecomood.log")

	require.NoError(t, EnsureLogDir())

	stat, err := os.Stat(filepath.Join(tmpDir, "logs", "subdir"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir_NoFile(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()

	assert.NoError(t, EnsureLogDir())
}

func TestEnsureLogDirError(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()

	// A regular file cannot be used as a directory.
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	GetGlobalConfig().Logging.File = filepath.Join(file, "subdir", "ecomood.log")

	assert.Error(t, EnsureLogDir())
}

func TestGetConfigDir(t *testing.T) {
	home := stubHome(t)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ecomood"), dir)

	t.Setenv(EnvHome, "/srv/ecomood")
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/ecomood", dir)
}

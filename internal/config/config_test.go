package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, cfg.StorePath)
	require.Equal(t, time.Minute, cfg.TickInterval)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.LogConsole)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"store_path: /tmp/test-themes.db\ntick_interval: 30s\nlog_level: debug\n",
	), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/test-themes.db", cfg.StorePath)
	require.Equal(t, 30*time.Second, cfg.TickInterval)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VELLUM_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
}

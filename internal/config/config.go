// Package config loads host configuration for the Vellum theme engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds host-level settings. The engine itself is configured in
// code; this covers where state lives and how the process logs.
type Config struct {
	// StorePath is the SQLite database holding persisted theme state.
	StorePath string `mapstructure:"store_path"`

	// TickInterval is how often scheduled mode re-evaluates.
	TickInterval time.Duration `mapstructure:"tick_interval"`

	// LogLevel is the zerolog level (trace, debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogConsole switches log output to human-readable console format.
	LogConsole bool `mapstructure:"log_console"`
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "vellum")
}

// Load reads configuration from an optional YAML file and VELLUM_*
// environment variables, with sensible defaults. An empty path uses the
// default location; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("store_path", filepath.Join(DefaultConfigDir(), "themes.db"))
	v.SetDefault("tick_interval", time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_console", true)

	v.SetEnvPrefix("VELLUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		// No explicit path: a missing default config file is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Minute
	}

	return &cfg, nil
}

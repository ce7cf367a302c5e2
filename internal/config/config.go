// Package config loads braglog settings from an optional YAML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the YAML file, environment
// variables. Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user config directory.
const AppName = "braglog"

// EnvConfigPath overrides the location of the YAML config file.
const EnvConfigPath = "BRAGLOG_CONFIG"

// Config holds braglog settings.
type Config struct {
	// Database is the path of the SQLite log. Empty means DefaultDatabasePath.
	Database string `yaml:"database" env:"BRAGLOG_DB"`
	LogLevel string `yaml:"log_level" env:"BRAGLOG_LOG_LEVEL" env-default:"info"`
}

// Dir returns the per-user braglog directory, e.g. ~/.config/braglog.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the config file location, honoring BRAGLOG_CONFIG.
func DefaultPath() (string, error) {
	if p, ok := os.LookupEnv(EnvConfigPath); ok && p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultDatabasePath returns the database location used when none is configured.
func DefaultDatabasePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "braglog.db"), nil
}

// Load reads the config file at path if it exists, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("config file not found, using environment and defaults", "path", path)
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if cfg.Database == "" {
		p, err := DefaultDatabasePath()
		if err != nil {
			return nil, err
		}
		cfg.Database = p
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return lvl, nil
}

// YAML renders c as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

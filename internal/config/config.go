// SPDX-License-Identifier: MPL-2.0

// Package config loads the ambient defaults for shargs: column width,
// variable prefix, export mode, and debug tracing. Values come from an
// optional TOML config file merged with SHARGS_* environment variables;
// the definition-argument stream overrides both per invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "shargs"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.toml"
	// EnvPrefix namespaces the environment variable overrides (SHARGS_DEBUG etc.).
	EnvPrefix = "SHARGS"
)

// Config holds the ambient defaults. Zero values mean "not configured":
// the engine falls back to its own defaults (80 columns, no prefix).
type Config struct {
	// Columns is the default help text width. 0 means use the engine default.
	Columns int `mapstructure:"columns"`
	// Prefix is the default variable name prefix.
	Prefix string `mapstructure:"prefix"`
	// Export emits `export` assignments by default.
	Export bool `mapstructure:"export"`
	// Debug enables trace output by default.
	Debug bool `mapstructure:"debug"`
}

// configDirOverride allows tests to override the config directory.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path. Primarily for
// tests, which must not depend on the invoking user's real config.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// ConfigDir returns the shargs configuration directory under the platform
// user config root.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(root, AppName), nil
}

// Load reads the config file (when present) and environment overrides and
// returns the merged Config. A missing file is not an error; a malformed
// one is.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("columns", 0)
	v.SetDefault("prefix", "")
	v.SetDefault("export", false)
	v.SetDefault("debug", false)

	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(cfgDir, ConfigFileName)
	if fileExists(path) {
		if err := loadTOMLIntoViper(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}

// loadTOMLIntoViper parses a TOML file and merges the resulting map into the
// viper instance, keeping viper as the single precedence arbiter between
// defaults, file values, and environment overrides.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	values := map[string]any{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return err
	}
	return v.MergeConfigMap(values)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads keycalc settings from defaults, keycalc.yaml, the
// environment and command-line flags, and writes them back as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "keycalc"
	envPrefix  = "keycalc"
)

// fs backs every file access of this package. Tests swap it for an
// in-memory filesystem.
var fs afero.Fs = afero.NewOsFs()

// SetFs replaces the filesystem used for reading and writing config files
// and returns the previous one.
func SetFs(f afero.Fs) afero.Fs {
	prev := fs
	fs = f
	return prev
}

type Config struct {
	Language string        `mapstructure:"language" yaml:"language"`
	Debug    bool          `mapstructure:"debug" yaml:"debug"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Keys     KeysConfig    `mapstructure:"keys" yaml:"keys"`
	Display  DisplayConfig `mapstructure:"display" yaml:"display"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// KeysConfig holds the letter keys of the keyboard mapping that are not
// fixed by the keypad vocabulary.
type KeysConfig struct {
	Sqrt       string `mapstructure:"sqrt" yaml:"sqrt"`
	ToggleSign string `mapstructure:"toggle_sign" yaml:"toggle_sign"`
	Copy       string `mapstructure:"copy" yaml:"copy"`
}

type DisplayConfig struct {
	// Glyphs renders * / sqrt( as × ÷ √( on the display.
	Glyphs bool `mapstructure:"glyphs" yaml:"glyphs"`
	Mouse  bool `mapstructure:"mouse" yaml:"mouse"`
}

// Defaults returns the default value of every config key.
func Defaults() map[string]any {
	return map[string]any{
		"language":         "en",
		"debug":            false,
		"log.level":        "info",
		"log.file":         "",
		"log.max_size_mb":  5,
		"log.max_backups":  3,
		"log.max_age_days": 28,
		"log.compress":     false,
		"keys.sqrt":        "s",
		"keys.toggle_sign": "n",
		"keys.copy":        "y",
		"display.glyphs":   true,
		"display.mouse":    true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "keycalc")
		default: // Linux, macOS, etc.
			configDir = "/etc/keycalc"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keycalc")
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig layers defaults, the first keycalc.yaml found (or the explicit
// file), KEYCALC_* environment variables and the flags of cmd, then decodes
// the result into T. A missing config file is reported as
// viper.ConfigFileNotFoundError together with the decoded defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()
	v.SetFs(fs)

	// 1. defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. file search paths, the explicit --config file wins
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 3. read the config file; a missing one is not fatal yet
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	// 4. environment
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 5. cli
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// WriteConfigFile stores c as YAML at the user (or system) config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := fs.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Marshal renders c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// Stat reports whether path can be read through the package filesystem.
func Stat(path string) error {
	_, err := fs.Stat(path)
	return err
}

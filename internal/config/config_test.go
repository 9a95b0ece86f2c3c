// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/keycalc/internal/config"
)

// useMemFs points the package at a fresh in-memory filesystem and the user
// config dir at a temp path for the duration of the test.
func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	mem := afero.NewMemMapFs()
	prev := cfg.SetFs(mem)
	t.Cleanup(func() { cfg.SetFs(prev) })
	return mem
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	useMemFs(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Language != "en" || got.Keys.Sqrt != "s" || !got.Display.Glyphs {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if got.Log.MaxSizeMB != 5 {
		t.Fatalf("expected log.max_size_mb default 5, got %d", got.Log.MaxSizeMB)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	mem := useMemFs(t)

	file := "/work/cfg.yaml"
	yaml := "language: de\nkeys:\n  sqrt: r\ndisplay:\n  glyphs: false\n"
	if err := afero.WriteFile(mem, file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Keys.Sqrt != "r" || got.Keys.ToggleSign != "n" {
		t.Fatalf("expected sqrt r with default toggle n, got %+v", got.Keys)
	}
	if got.Display.Glyphs {
		t.Fatalf("expected glyphs disabled")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	mem := useMemFs(t)
	t.Setenv("KEYCALC_LANGUAGE", "fr")

	file := "/work/cfg.yaml"
	if err := afero.WriteFile(mem, file, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "fr" {
		t.Fatalf("expected env to win, got %q", got.Language)
	}
}

func TestLoadConfig_ChangedFlagWins(t *testing.T) {
	useMemFs(t)

	cmd := &cobra.Command{}
	cmd.Flags().String("log.level", "info", "")
	if err := cmd.Flags().Set("log.level", "debug"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Log.Level != "debug" {
		t.Fatalf("expected flag value debug, got %q", got.Log.Level)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	mem := useMemFs(t)

	c := cfg.Config{Language: "de"}
	c.Keys.Sqrt = "q"
	c.Log.Level = "warn"

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	if ok, _ := afero.Exists(mem, path); !ok {
		t.Fatalf("expected config file at %s", path)
	}
	if filepath.Base(path) != "keycalc.yaml" {
		t.Fatalf("unexpected file name %s", path)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.Keys.Sqrt != "q" || got.Log.Level != "warn" {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const primaryLocale = "en.yaml"

var usedKey = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func loadKeysFromLocale(t *testing.T, name string) []string {
	t.Helper()
	data, err := localeFS.ReadFile("locales/" + name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// findUsedKeys collects the message IDs passed to i18n.T in the module.
func findUsedKeys(t *testing.T, root string) map[string]string {
	t.Helper()
	used := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), "_") {
			return filepath.SkipDir
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKey.FindAllStringSubmatch(string(data), -1) {
			used[m[1]] = path
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return used
}

func TestLocales_SameKeys(t *testing.T) {
	primary := loadKeysFromLocale(t, primaryLocale)
	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		t.Fatalf("read locales: %v", err)
	}
	for _, f := range files {
		if f.Name() == primaryLocale {
			continue
		}
		if diff := cmp.Diff(primary, loadKeysFromLocale(t, f.Name())); diff != "" {
			t.Fatalf("%s keys differ from %s (-primary +other):\n%s", f.Name(), primaryLocale, diff)
		}
	}
}

func TestLocales_UsedKeysExist(t *testing.T) {
	primary := loadKeysFromLocale(t, primaryLocale)
	for key, path := range findUsedKeys(t, "../..") {
		if _, ok := slices.BinarySearch(primary, key); !ok {
			t.Fatalf("%s uses %q, which is missing from %s", path, key, primaryLocale)
		}
	}
}

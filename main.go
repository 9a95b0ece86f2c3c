// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for keycalc.
//
// Usage:
//
//	go run . [flags]
//	./keycalc [flags]
//
// This launches the keypad TUI, or line mode when stdin is not a terminal.
// See --help for options.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// eval already printed ERROR
		if !errors.Is(err, cli.ErrEvaluation) {
			logging.Errorf("keycalc: %v", err)
		}
		os.Exit(1)
	}
}

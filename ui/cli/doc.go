// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the keycalc command line using Cobra. It wires
// configuration, logging and translations, then hands over to the terminal
// UI, the line reader or one of the scripting subcommands. Calculator logic
// stays in core/calc and core/input.
package cli

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive terminal keypad. Presentation and
// input handling live here; the calculator itself is provided by core/calc
// and core/input.
package tui

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/ui/tui/models/views/root"
)

type Options struct {
	Keyboard input.Keyboard
	CopyKey  string
	Glyphs   bool
	Mouse    bool
	Debug    bool
}

// Run shows the keypad in the alternate screen until the user quits.
func Run(opts Options) error {
	model := root.New(calc.New(), root.Options{
		Keyboard: opts.Keyboard,
		CopyKey:  opts.CopyKey,
		Glyphs:   opts.Glyphs,
		Debug:    opts.Debug,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	_, err := tea.NewProgram(model, programOpts...).Run()
	return err
}

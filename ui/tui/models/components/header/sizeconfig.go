// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/ui/tui/models/components/stack"
	"github.com/toeirei/keycalc/ui/tui/util"
)

// MinTerminalHeight is the height below which the header is hidden to
// leave room for the keypad.
const MinTerminalHeight = 28

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(_ util.Model, _ int, total_size int) int {
	if total_size >= MinTerminalHeight {
		return lipgloss.Height(logo) + 1
	}
	return 0
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package debug shows the accumulator state and the latest presses next to
// the keypad when debug mode is on.
package debug

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/ui/tui/models/components/keypad"
	"github.com/toeirei/keycalc/ui/tui/util"
	"github.com/toeirei/keycalc/util/slicest"
)

const keepPresses = 10

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

type Model struct {
	acc     *calc.Accumulator
	presses []keypad.PressedMsg
	size    util.Size
}

func New(acc *calc.Accumulator) *Model {
	return &Model{acc: acc}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(keypad.PressedMsg); ok {
		m.presses = append(m.presses, msg)
		if len(m.presses) > keepPresses {
			m.presses = m.presses[len(m.presses)-keepPresses:]
		}
	}
	return nil
}

func (m Model) View() string {
	state := dumper.Sdump(struct {
		Expression string
		Display    string
	}{m.acc.Expression(), m.acc.Display()})

	lines := slicest.Map(m.presses, func(p keypad.PressedMsg) string {
		if p.Event.Token != "" {
			return fmt.Sprintf("- %s %q -> %s", p.Event.Action, p.Event.Token, p.Display)
		}
		return fmt.Sprintf("- %s -> %s", p.Event.Action, p.Display)
	})
	slices.Reverse(lines)

	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderLeft(true).
		PaddingLeft(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{state}, lines...)...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

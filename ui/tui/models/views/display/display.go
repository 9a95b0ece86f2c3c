// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package display shows the calculator's current display value.
package display

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/ui/tui/util"
)

// Height is the size of the display, border included.
const Height = 3

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Align(lipgloss.Right)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

type Model struct {
	acc    *calc.Accumulator
	glyphs bool
	size   util.Size
}

// New shows acc.Display(). With glyphs the operators are rendered as ÷ × √.
func New(acc *calc.Accumulator, glyphs bool) *Model {
	return &Model{acc: acc, glyphs: glyphs}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

// Text is the display value as rendered, before truncation.
func (m Model) Text() string {
	text := m.acc.Display()
	if m.glyphs {
		text = input.Prettify(text)
	}
	return text
}

func (m Model) View() string {
	inner := max(m.size.Width-2, 1)
	text := m.Text()
	if text == calc.ErrorMarker {
		text = errorStyle.Render(text)
	} else {
		text = truncateLeft(text, inner)
	}
	return boxStyle.Width(inner).Render(text)
}

// truncateLeft keeps the end of s, where the cursor is, when s is wider than
// width.
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return "…" + string(runes[len(runes)-width+1:])
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keypad is the clickable button grid of the calculator. Buttons are
// activated by mouse click, by moving the cursor and pressing space, or by
// typing the key bound to them.
package keypad

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/ui/tui/util"
	"github.com/toeirei/keycalc/util/slicest"
)

const (
	// CellWidth and CellHeight are the outer size of a button, border included.
	CellWidth  = 7
	CellHeight = 3
)

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(CellWidth - 2).
			Align(lipgloss.Center)
	cursorStyle = buttonStyle.
			BorderForeground(lipgloss.Color("12")).
			Bold(true)
	blurredCursorStyle = buttonStyle.
				BorderForeground(lipgloss.Color("8"))
)

// PressedMsg reports an event that reached the accumulator.
type PressedMsg struct {
	Event   input.Event
	Display string
}

type Model struct {
	acc      *calc.Accumulator
	keyboard input.Keyboard
	layout   [][]input.Button
	keyMap   KeyMap
	size     util.Size
	row, col int
	focused  bool
}

func New(acc *calc.Accumulator, keyboard input.Keyboard) *Model {
	return &Model{
		acc:      acc,
		keyboard: keyboard,
		layout:   input.Layout(),
		keyMap:   newKeyMap(keyboard),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, m.keyMap.Up):
			m.move(-1, 0)
		case key.Matches(msg, m.keyMap.Down):
			m.move(1, 0)
		case key.Matches(msg, m.keyMap.Left):
			m.move(0, -1)
		case key.Matches(msg, m.keyMap.Right):
			m.move(0, 1)
		case key.Matches(msg, m.keyMap.Press):
			if b, ok := input.At(m.layout, m.row, m.col); ok {
				return m.dispatch(b.Event)
			}
		default:
			if ev, ok := m.keyboard.Lookup(msg.String()); ok {
				return m.dispatch(ev)
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if row, col, ok := m.cellAt(msg.X, msg.Y); ok {
			m.row, m.col = row, col
			return m.dispatch(m.layout[row][col].Event)
		}
	}
	return nil
}

func (m *Model) dispatch(ev input.Event) tea.Cmd {
	input.Dispatch(m.acc, ev)
	pressed := PressedMsg{Event: ev, Display: m.acc.Display()}
	return func() tea.Msg { return pressed }
}

// move steps the cursor, clamping the column to the length of the new row.
func (m *Model) move(dRow, dCol int) {
	m.row = util.Clamp(0, m.row+dRow, len(m.layout)-1)
	m.col = util.Clamp(0, m.col+dCol, len(m.layout[m.row])-1)
}

func (m Model) leftPadding() int {
	return max((m.size.Width-m.columns()*CellWidth)/2, 0)
}

func (m Model) columns() int {
	return slicest.Reduce(m.layout, func(row []input.Button, n int) int {
		return max(n, len(row))
	})
}

// cellAt maps a position local to the keypad to a button.
func (m Model) cellAt(x, y int) (int, int, bool) {
	x -= m.leftPadding()
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col := y/CellHeight, x/CellWidth
	if _, ok := input.At(m.layout, row, col); !ok {
		return 0, 0, false
	}
	return row, col, true
}

func (m Model) View() string {
	rows := slicest.MapI(m.layout, func(r int, row []input.Button) string {
		cells := slicest.MapI(row, func(c int, b input.Button) string {
			style := buttonStyle
			if r == m.row && c == m.col {
				style = blurredCursorStyle
				if m.focused {
					style = cursorStyle
				}
			}
			return style.Render(b.Label)
		})
		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	})
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().PaddingLeft(m.leftPadding()).Render(grid)
}

// Height is the number of rows the keypad needs.
func (m Model) Height() int {
	return len(m.layout) * CellHeight
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Cursor returns the label of the button under the cursor.
func (m Model) Cursor() string {
	if b, ok := input.At(m.layout, m.row, m.col); ok {
		return strings.TrimSpace(b.Label)
	}
	return ""
}

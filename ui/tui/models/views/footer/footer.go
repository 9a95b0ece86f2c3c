// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/ui/tui/models/components/keyhelp"
	"github.com/toeirei/keycalc/ui/tui/models/components/keypad"
	"github.com/toeirei/keycalc/ui/tui/util"
)

var statusStyle = lipgloss.NewStyle().Italic(true).Faint(true)

// StatusMsg replaces the status line. An empty status hides it.
type StatusMsg string

func SetStatus(status string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(status) }
}

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     string
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject baseKeyMap
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = string(msg)
		return nil
	case keypad.PressedMsg:
		m.status = ""
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) view() string {
	if m.status == "" {
		return m.help.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(m.status), m.help.View())
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/ui/tui/util"
	"github.com/toeirei/keycalc/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	old_size   int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	// mouse events only reach the item under the pointer, in its own coordinates
	if mouse, ok := msg.(tea.MouseMsg); ok {
		if i, local, hit := s.itemAt(mouse); hit {
			cmds = append(cmds, s.updateItem(s.items[i], local))
		}
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			return s.updateItem(item, msg)
		})...)
	}

	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)
	return tea.Batch(cmds...)
}

func (s *Model) updateItem(item Item, msg tea.Msg) tea.Cmd {
	msg = applyMessageFilters(*item.Model, msg, item.MsgFilters)
	msg = applyMessageFilters(*item.Model, msg, s.MsgFilters)
	if msg == nil {
		return nil
	}
	return (*item.Model).Update(msg)
}

// itemAt finds the visible item under the mouse pointer and translates the
// event into that item's coordinates.
func (s *Model) itemAt(mouse tea.MouseMsg) (int, tea.MouseMsg, bool) {
	pos := mouse.X
	if s.Orientation == Vertical {
		pos = mouse.Y
	}

	offset, first := 0, true
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		if !first {
			offset += s.Gap
		}
		first = false

		if pos >= offset && pos < offset+item.size {
			local := mouse
			if s.Orientation == Vertical {
				local.Y -= offset
			} else {
				local.X -= offset
			}
			return i, local, true
		}
		offset += item.size
	}
	return 0, mouse, false
}

func (s Model) View() string {
	// prepare based on orientation
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	// hidden items take no space and no gap
	visible := slicest.Filter(s.items, func(item Item) bool { return item.size > 0 })

	return joiner(
		s.Align,
		slicest.MapI(visible, func(i int, item Item) string {
			// no gap on first item
			margin := s.Gap * min(i, 1)
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	if m.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(m.items))
		keyMaps := make([]help.KeyMap, len(m.items))

		for i, item := range m.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*m.items[m.focussedIndex].Model).Focus()
}

func (m *Model) Blur() {
	if m.focussedIndex == FocusAll() {
		for _, item := range m.items {
			(*item.Model).Blur()
		}
	} else {
		(*m.items[m.focussedIndex].Model).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (m *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	m.Blur()
	m.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(m.items)-1))
	return m.Focus()
}

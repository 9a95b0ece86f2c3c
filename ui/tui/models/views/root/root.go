// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root assembles the calculator screen: header, display, keypad,
// optional debug pane and footer.
package root

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/buildvars"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/ui/tui/models/components/header"
	"github.com/toeirei/keycalc/ui/tui/models/components/keypad"
	"github.com/toeirei/keycalc/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/keycalc/ui/tui/models/helpers/title"
	"github.com/toeirei/keycalc/ui/tui/models/views/debug"
	"github.com/toeirei/keycalc/ui/tui/models/views/display"
	"github.com/toeirei/keycalc/ui/tui/models/views/footer"
	"github.com/toeirei/keycalc/ui/tui/util"
)

const title string = "keycalc"

// columnWidth fits four keypad buttons and a little air.
const columnWidth = 4*keypad.CellWidth + 2

type Options struct {
	Keyboard input.Keyboard
	CopyKey  string
	Glyphs   bool
	Debug    bool
	// Copy writes to the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

type Model struct {
	acc          *calc.Accumulator
	keyMap       KeyMap
	copy         func(string) error
	stack        *stack.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

func New(acc *calc.Accumulator, opts Options) *Model {
	keyMap := NewKeyMap(opts.CopyKey)
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	_keypad := keypad.New(acc, opts.Keyboard)
	_footer_ptr := util.ModelPointer(footer.New(&keyMap))

	var body *util.Model = util.ModelPointer(stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithFocus(stack.FocusAll()),
		stack.WithItem(util.ModelPointer(display.New(acc, opts.Glyphs)), stack.StaticSize(display.Height)),
		stack.WithItem(util.ModelPointer(_keypad), stack.StaticSize(_keypad.Height())),
	))
	if opts.Debug {
		body = util.ModelPointer(stack.New(
			stack.WithOrientation(stack.Horizontal),
			stack.WithFocus(stack.FocusAll()),
			stack.WithGap(1),
			stack.WithItem(body, stack.StaticSize(columnWidth)),
			stack.WithItem(util.ModelPointer(debug.New(acc)), stack.VariableSize(1)),
		))
	}

	return &Model{
		acc:    acc,
		keyMap: keyMap,
		copy:   opts.Copy,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusAll()),
			stack.WithItem(util.ModelPointer(header.New()), header.SizeConfig),
			stack.WithItem(body, stack.VariableSize(1)),
			stack.WithItem(_footer_ptr, footer.SizeConfig),
		),
		footer:       _footer_ptr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, nil
		case key.Matches(msg, m.keyMap.Copy):
			return m, m.copyDisplay()
		}
	case keypad.PressedMsg:
		cmd := m.stack.Update(msg)
		if msg.Event.Action == input.ActionEvaluate {
			cmd = tea.Batch(cmd, windowtitle.Set(msg.Display))
		}
		return m, cmd
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

func (m *Model) copyDisplay() tea.Cmd {
	value := m.acc.Display()
	if err := m.copy(value); err != nil {
		logging.Warnf("copy %q to clipboard: %v", value, err)
		return footer.SetStatus(i18n.T("status.copy_failed"))
	}
	return footer.SetStatus(i18n.T("status.copied", value))
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

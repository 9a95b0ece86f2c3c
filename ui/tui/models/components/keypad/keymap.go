// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package keypad

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/internal/i18n"
)

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Press      key.Binding
	Evaluate   key.Binding
	Clear      key.Binding
	Backspace  key.Binding
	Sqrt       key.Binding
	ToggleSign key.Binding
	Percent    key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Evaluate, km.Clear, km.Sqrt, km.ToggleSign}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Press},
		{km.Evaluate, km.Clear, km.Backspace},
		{km.Sqrt, km.ToggleSign, km.Percent},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func newKeyMap(kb input.Keyboard) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("←↑↓→", i18n.T("help.move")),
		),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Press: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", i18n.T("help.press")),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", i18n.T("help.evaluate")),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.clear")),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", i18n.T("help.backspace")),
		),
		Sqrt:       optional(kb.SqrtKey, i18n.T("help.sqrt")),
		ToggleSign: optional(kb.ToggleSignKey, i18n.T("help.toggle_sign")),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", i18n.T("help.percent")),
		),
	}
}

// optional binds k, or returns a disabled binding when k is unset.
func optional(k, desc string) key.Binding {
	if k == "" {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

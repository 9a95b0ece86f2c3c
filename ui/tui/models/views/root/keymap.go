// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keycalc/internal/i18n"
)

type KeyMap struct {
	Exit key.Binding
	Help key.Binding
	Copy key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Copy, km.Help, km.Exit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Copy, km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func NewKeyMap(copyKey string) KeyMap {
	km := KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("help.exit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.help")),
		),
		Copy: key.NewBinding(key.WithDisabled()),
	}
	if copyKey != "" {
		km.Copy = key.NewBinding(
			key.WithKeys(copyKey),
			key.WithHelp(copyKey, i18n.T("help.copy")),
		)
	}
	return km
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build gui

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/ui/gui"
)

func init() {
	extraCommands = append(extraCommands, newGUICmd)
}

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: i18n.T("cli.gui.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(keyboard(), i18n.T("app.title")+" "+compositeVersion())
		},
	}
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/internal/i18n"
)

func newPressCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:     "press KEY...",
		Short:   i18n.T("cli.press.short"),
		Example: "  keycalc press 5 0 % enter\n  keycalc press --trace 1 2 n enter",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var opts []calc.Option
			if trace {
				opts = append(opts, calc.WithObserver(func(display string) {
					fmt.Fprintln(out, display)
				}))
			}
			acc := calc.New(opts...)

			if err := input.Replay(acc, keyboard(), args); err != nil {
				return err
			}
			if !trace {
				fmt.Fprintln(out, acc.Display())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")
	return cmd
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
)

// ErrEvaluation is returned by eval after it printed the error marker.
var ErrEvaluation = errors.New("evaluation failed")

// evaluateText types text into acc and evaluates it. A character without a
// key binding shows the error marker, like any other invalid input.
func evaluateText(acc *calc.Accumulator, kb input.Keyboard, text string) string {
	acc.Clear()
	if err := input.Replay(acc, kb, input.SplitExpression(kb, text)); err != nil {
		logging.Warnf("%q: %v", text, err)
		acc.Clear()
		return calc.ErrorMarker
	}
	acc.Evaluate()
	return acc.Display()
}

// runLineMode evaluates every non-blank line of in on its own and prints
// one display value per line.
func runLineMode(in io.Reader, out io.Writer) error {
	acc := calc.New()
	kb := keyboard()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := fmt.Fprintln(out, evaluateText(acc, kb, line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval EXPRESSION...",
		Short:   i18n.T("cli.eval.short"),
		Example: "  keycalc eval '3+50%'\n  keycalc eval 'sqrt(16)*2'\n  keycalc eval -- -5+2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			display := evaluateText(calc.New(), keyboard(), strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), display)
			if display == calc.ErrorMarker {
				cmd.SilenceErrors = true
				return fmt.Errorf("%s: %w", i18n.T("cli.error.evaluation"), ErrEvaluation)
			}
			return nil
		},
	}
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input translates button activations and key presses into calls
// on a calc.Accumulator. It owns the keypad layout, the glyph mapping between
// what buttons show and what the accumulator understands, and the keyboard
// bindings shared by the terminal and desktop front ends.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/keycalc/core/calc"
)

// ErrUnknownKey is returned by Replay for a key without a binding.
var ErrUnknownKey = errors.New("unknown key")

type Action int

const (
	ActionAppend Action = iota
	ActionClear
	ActionToggleSign
	ActionPercent
	ActionSqrt
	ActionEvaluate
	ActionBackspace
)

func (a Action) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	case ActionToggleSign:
		return "toggle-sign"
	case ActionPercent:
		return "percent"
	case ActionSqrt:
		return "sqrt"
	case ActionEvaluate:
		return "equals"
	case ActionBackspace:
		return "backspace"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Event is one logical input. Token is only used by ActionAppend.
type Event struct {
	Action Action
	Token  string
}

func Append(token string) Event { return Event{Action: ActionAppend, Token: TranslateGlyph(token)} }
func Do(action Action) Event    { return Event{Action: action} }

// Dispatch runs ev against acc.
func Dispatch(acc *calc.Accumulator, ev Event) {
	switch ev.Action {
	case ActionAppend:
		acc.Append(ev.Token)
	case ActionClear:
		acc.Clear()
	case ActionToggleSign:
		acc.ToggleSign()
	case ActionPercent:
		acc.Percent()
	case ActionSqrt:
		acc.InsertSqrt()
	case ActionEvaluate:
		acc.Evaluate()
	case ActionBackspace:
		acc.Backspace()
	}
}

var glyphs = strings.NewReplacer("÷", "/", "×", "*", "−", "-")

// TranslateGlyph maps the display operators ÷ × − to / * -.
func TranslateGlyph(s string) string {
	return glyphs.Replace(s)
}

var pretty = strings.NewReplacer("sqrt(", "√(", "*", "×", "/", "÷")

// Prettify renders an expression with display glyphs. The error marker is
// returned unchanged.
func Prettify(display string) string {
	if display == calc.ErrorMarker {
		return display
	}
	return pretty.Replace(display)
}

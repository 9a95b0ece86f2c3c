// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toeirei/keycalc/core/calc"
)

// Keyboard maps key names, as reported by bubbletea (e.g. "enter", "esc",
// "backspace", "5"), to events.
type Keyboard struct {
	SqrtKey       string
	ToggleSignKey string
}

// DefaultKeyboard binds s to sqrt( and n to the sign toggle.
func DefaultKeyboard() Keyboard {
	return Keyboard{SqrtKey: "s", ToggleSignKey: "n"}
}

// Lookup returns the event bound to key.
func (k Keyboard) Lookup(key string) (Event, bool) {
	switch key {
	case "enter", "=":
		return Do(ActionEvaluate), true
	case "backspace":
		return Do(ActionBackspace), true
	case "esc", "escape":
		return Do(ActionClear), true
	case "%":
		return Do(ActionPercent), true
	}
	if key != "" && key == k.SqrtKey {
		return Do(ActionSqrt), true
	}
	if key != "" && key == k.ToggleSignKey {
		return Do(ActionToggleSign), true
	}
	if len(key) == 1 && strings.Contains("0123456789+-*/().", key) {
		return Append(key), true
	}
	// glyphs typed or pasted directly
	if t := TranslateGlyph(key); t != key {
		return Append(t), true
	}
	return Event{}, false
}

// Replay feeds keys to acc one at a time, as if they were typed.
func Replay(acc *calc.Accumulator, kb Keyboard, keys []string) error {
	for _, key := range keys {
		ev, ok := kb.Lookup(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		Dispatch(acc, ev)
	}
	return nil
}

var sqrtSpellings = strings.NewReplacer("√(", "sqrt(", "√", "sqrt(")

// SplitExpression turns typed text such as "3+50%" into key names. Blanks
// are dropped; "sqrt(" and "√" become the sqrt key of kb.
func SplitExpression(kb Keyboard, text string) []string {
	text = sqrtSpellings.Replace(text)

	var keys []string
	for i := 0; i < len(text); {
		if kb.SqrtKey != "" && strings.HasPrefix(text[i:], "sqrt(") {
			keys = append(keys, kb.SqrtKey)
			i += len("sqrt(")
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if unicode.IsSpace(r) {
			continue
		}
		keys = append(keys, string(r))
	}
	return keys
}

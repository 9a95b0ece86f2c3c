// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package input

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/keycalc/core/calc"
)

func TestTranslateGlyph(t *testing.T) {
	got := []string{TranslateGlyph("÷"), TranslateGlyph("×"), TranslateGlyph("−"), TranslateGlyph("7"), TranslateGlyph("+")}
	want := []string{"/", "*", "-", "7", "+"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TranslateGlyph mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettify(t *testing.T) {
	if got := Prettify("sqrt(9)*2/3"); got != "√(9)×2÷3" {
		t.Fatalf("unexpected prettified display %q", got)
	}
	if got := Prettify(calc.ErrorMarker); got != calc.ErrorMarker {
		t.Fatalf("error marker must not change, got %q", got)
	}
}

func TestKeyboard_Lookup(t *testing.T) {
	kb := DefaultKeyboard()
	cases := map[string]Event{
		"7":         Append("7"),
		"(":         Append("("),
		"*":         Append("*"),
		"×":         Append("*"),
		"enter":     Do(ActionEvaluate),
		"=":         Do(ActionEvaluate),
		"backspace": Do(ActionBackspace),
		"esc":       Do(ActionClear),
		"%":         Do(ActionPercent),
		"s":         Do(ActionSqrt),
		"n":         Do(ActionToggleSign),
	}
	for key, want := range cases {
		got, ok := kb.Lookup(key)
		if !ok {
			t.Fatalf("%q: expected a binding", key)
		}
		if got != want {
			t.Fatalf("%q: expected %+v, got %+v", key, want, got)
		}
	}

	for _, key := range []string{"x", "ctrl+a", "", "12"} {
		if _, ok := kb.Lookup(key); ok {
			t.Fatalf("%q: expected no binding", key)
		}
	}
}

func TestKeyboard_CustomSqrtKey(t *testing.T) {
	kb := Keyboard{SqrtKey: "r"}
	if ev, ok := kb.Lookup("r"); !ok || ev.Action != ActionSqrt {
		t.Fatalf("expected r to insert sqrt, got %+v %v", ev, ok)
	}
	if _, ok := kb.Lookup("s"); ok {
		t.Fatalf("expected s to be unbound")
	}
}

func TestReplay_PercentScenario(t *testing.T) {
	acc := calc.New()
	kb := DefaultKeyboard()
	if err := Replay(acc, kb, []string{"3", "+", "5", "0", "%"}); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if acc.Expression() != "3+(50/100)" {
		t.Fatalf("expected 3+(50/100), got %q", acc.Expression())
	}
	if err := Replay(acc, kb, []string{"enter"}); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if acc.Display() != "3.5" {
		t.Fatalf("expected 3.5, got %q", acc.Display())
	}
}

func TestReplay_UnknownKey(t *testing.T) {
	acc := calc.New()
	err := Replay(acc, DefaultKeyboard(), []string{"1", "x", "2"})
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if acc.Expression() != "1" {
		t.Fatalf("expected keys before the unknown one to apply, got %q", acc.Expression())
	}
}

func TestSplitExpression(t *testing.T) {
	kb := DefaultKeyboard()
	got := SplitExpression(kb, " sqrt(16) + √(9) × 2 ")
	want := []string{"s", "1", "6", ")", "+", "s", "9", ")", "×", "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SplitExpression mismatch (-want +got):\n%s", diff)
	}

	acc := calc.New()
	if err := Replay(acc, kb, append(got, "enter")); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if acc.Display() != "10" {
		t.Fatalf("expected sqrt(16)+sqrt(9)*2 = 10, got %q", acc.Display())
	}
}

func TestLayout_ButtonsDispatch(t *testing.T) {
	layout := Layout()
	acc := calc.New()

	press := func(label string) {
		t.Helper()
		for _, row := range layout {
			for _, b := range row {
				if b.Label == label {
					Dispatch(acc, b.Event)
					return
				}
			}
		}
		t.Fatalf("no button labeled %q", label)
	}

	for _, l := range []string{"9", "×", "4", "−", "6", "÷", "2", "="} {
		press(l)
	}
	if acc.Display() != "33" {
		t.Fatalf("expected 9*4-6/2 = 33, got %q", acc.Display())
	}

	press("±")
	if acc.Expression() != "(0-33)" {
		t.Fatalf("expected (0-33), got %q", acc.Expression())
	}
	press("C")
	if acc.Display() != "0" {
		t.Fatalf("expected 0 after clear, got %q", acc.Display())
	}
}

func TestAt(t *testing.T) {
	layout := Layout()
	if b, ok := At(layout, 0, 0); !ok || b.Label != "C" {
		t.Fatalf("expected C at 0,0, got %+v", b)
	}
	if _, ok := At(layout, 5, 3); ok {
		t.Fatalf("expected the short last row to have no fourth button")
	}
	if _, ok := At(layout, -1, 0); ok {
		t.Fatalf("expected out of range lookup to fail")
	}
}

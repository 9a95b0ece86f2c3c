// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package input

// Button is one labeled keypad control.
type Button struct {
	Label string
	Event Event
}

func digit(label string) Button { return Button{Label: label, Event: Append(label)} }

// Layout returns the keypad, row by row.
func Layout() [][]Button {
	return [][]Button{
		{{"C", Do(ActionClear)}, {"±", Do(ActionToggleSign)}, {"%", Do(ActionPercent)}, digit("÷")},
		{digit("7"), digit("8"), digit("9"), digit("×")},
		{digit("4"), digit("5"), digit("6"), digit("−")},
		{digit("1"), digit("2"), digit("3"), digit("+")},
		{digit("("), digit("0"), digit(")"), digit(".")},
		{{"√", Do(ActionSqrt)}, {"⌫", Do(ActionBackspace)}, {"=", Do(ActionEvaluate)}},
	}
}

// At returns the button at row and col of layout.
func At(layout [][]Button, row, col int) (Button, bool) {
	if row < 0 || row >= len(layout) || col < 0 || col >= len(layout[row]) {
		return Button{}, false
	}
	return layout[row][col], true
}

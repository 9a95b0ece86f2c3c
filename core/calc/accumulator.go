// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/toeirei/keycalc/internal/logging"
)

// ErrorMarker is shown on the display when an evaluation fails.
const ErrorMarker = "ERROR"

// emptyDisplay is what the display shows for an empty expression.
const emptyDisplay = "0"

const negationPrefix = "(0-"

var trailingNumber = regexp.MustCompile(`(\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)$`)

// Observer is notified with the new display value after every refresh.
type Observer func(display string)

// Accumulator owns the expression being typed and the value shown on the
// display. It is not safe for concurrent use; every front end drives its own
// instance from a single event loop.
type Accumulator struct {
	expr     string
	display  string
	observer Observer
	toggled  toggleStep
}

// toggleStep is the last rewrite done by ToggleSign.
type toggleStep struct {
	from, to string
}

type Option = func(a *Accumulator)

// WithObserver registers fn to be called after every display refresh.
func WithObserver(fn Observer) Option {
	return func(a *Accumulator) {
		a.observer = fn
	}
}

// New returns an empty accumulator showing "0".
func New(opts ...Option) *Accumulator {
	a := &Accumulator{display: emptyDisplay}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Expression returns the live expression text.
func (a *Accumulator) Expression() string { return a.expr }

// Display returns the value currently on the display.
func (a *Accumulator) Display() string { return a.display }

// Empty reports whether the expression is empty.
func (a *Accumulator) Empty() bool { return a.expr == "" }

func (a *Accumulator) show(value string) {
	a.display = value
	if a.observer != nil {
		a.observer(value)
	}
}

func (a *Accumulator) refresh() {
	if a.expr == "" {
		a.show(emptyDisplay)
		return
	}
	a.show(a.expr)
}

// Append adds token to the expression. An empty expression cannot start
// with + / * or a decimal point; such a token is dropped and the display is
// left as it is.
func (a *Accumulator) Append(token string) {
	if a.expr == "" && strings.ContainsAny(token, "+/*.") {
		return
	}
	a.expr += token
	a.refresh()
}

// Clear resets the expression and shows "0".
func (a *Accumulator) Clear() {
	a.expr = ""
	a.toggled = toggleStep{}
	a.show(emptyDisplay)
}

// Backspace removes the last character of the expression without any
// validation.
func (a *Accumulator) Backspace() {
	if a.expr != "" {
		_, size := utf8.DecodeLastRuneInString(a.expr)
		a.expr = a.expr[:len(a.expr)-size]
	}
	a.refresh()
}

// ToggleSign wraps the expression as (0-expr), or unwraps it when the whole
// expression is such a wrapper. The toggle is textual: it only recognises
// its own wrapper and never looks at the value. Toggling the result of the
// previous toggle always restores its input, so two toggles in a row are a
// no-op even for unbalanced input such as "2)".
func (a *Accumulator) ToggleSign() {
	if a.expr == "" {
		return
	}
	prev := a.expr
	switch inner, ok := unwrapNegation(a.expr); {
	case a.toggled.to == a.expr:
		a.expr = a.toggled.from
	case ok:
		a.expr = inner
	default:
		a.expr = negationPrefix + a.expr + ")"
	}
	a.toggled = toggleStep{from: prev, to: a.expr}
	a.refresh()
}

// unwrapNegation returns X for an expression of the form (0-X) whose first
// parenthesis does not close before the last character. X may still be
// missing closing parentheses while the user is typing.
func unwrapNegation(expr string) (string, bool) {
	if !strings.HasPrefix(expr, negationPrefix) || !strings.HasSuffix(expr, ")") {
		return "", false
	}
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(expr)-1 {
				return "", false
			}
		}
	}
	return expr[len(negationPrefix) : len(expr)-1], true
}

// Percent rewrites the trailing number n of the expression as (n/100).
// Earlier numbers are untouched, and nothing changes without a trailing
// number.
func (a *Accumulator) Percent() {
	a.expr = trailingNumber.ReplaceAllString(a.expr, "(${1}/100)")
	a.refresh()
}

// InsertSqrt appends the sqrt( call. The argument and the closing
// parenthesis come from later input or from the auto-close in Evaluate.
func (a *Accumulator) InsertSqrt() {
	a.expr += sqrtCall
	a.refresh()
}

// Evaluate computes the expression. On success the formatted result is
// shown and the unrounded result becomes the new expression, so input can
// continue from it. On failure "ERROR" is shown and the expression is reset.
// An empty expression is left alone.
func (a *Accumulator) Evaluate() {
	if a.expr == "" {
		return
	}

	if open, closed := strings.Count(a.expr, "("), strings.Count(a.expr, ")"); open > closed {
		a.expr += strings.Repeat(")", open-closed)
	}
	a.expr = strings.ReplaceAll(a.expr, "%", "/100")

	v, err := evaluate(a.expr)
	if err != nil {
		logging.Debugf("evaluate %q: %v", a.expr, err)
		a.expr = ""
		a.show(ErrorMarker)
		return
	}

	a.expr = Canonical(v)
	a.show(FormatResult(v))
}

func evaluate(expr string) (float64, error) {
	safe, err := Sanitize(expr)
	if err != nil {
		return 0, err
	}
	return Eval(safe)
}

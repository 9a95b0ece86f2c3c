// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is wrapped by every error the evaluator returns.
var ErrInvalidExpression = errors.New("invalid expression")

// ErrNotFinite reports a result that is infinite or NaN, e.g. after a
// division by zero or the square root of a negative number.
var ErrNotFinite = fmt.Errorf("result is not finite: %w", ErrInvalidExpression)

// SyntaxError is a parse failure at a byte offset of the expression.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidExpression }

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"strings"
)

const allowedChars = "0123456789+-*/()."

// Sanitize checks that expr only uses the keypad vocabulary: digits,
// + - * / ( ) . and the sqrt( call. The only other letter accepted is an
// exponent marker directly after a number, as found in stored results.
// It returns expr unchanged when it passes.
func Sanitize(expr string) (string, error) {
	for i := 0; i < len(expr); {
		ch := expr[i]
		switch {
		case strings.IndexByte(allowedChars, ch) >= 0:
			i++
		case strings.HasPrefix(expr[i:], sqrtCall):
			i += len(sqrtCall)
		case (ch == 'e' || ch == 'E') && isExponent(expr, i):
			i++
		default:
			return "", fmt.Errorf("character %q at %d not allowed: %w", ch, i, ErrInvalidExpression)
		}
	}
	return expr, nil
}

// isExponent reports whether the marker at i sits between a mantissa and
// an exponent, e.g. the e in 1.5e-7.
func isExponent(expr string, i int) bool {
	if i == 0 || !(isDigit(expr[i-1]) || expr[i-1] == '.') {
		return false
	}
	j := i + 1
	if j < len(expr) && (expr[j] == '+' || expr[j] == '-') {
		j++
	}
	return j < len(expr) && isDigit(expr[j])
}

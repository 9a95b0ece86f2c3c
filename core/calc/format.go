// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"math"
	"strconv"
	"strings"
)

// displayDecimals is the number of decimal places a fractional result is
// rounded to before it is shown.
const displayDecimals = 10

// FormatResult renders an evaluation result for the display. Integers are
// printed without a decimal point; everything else is rounded to ten decimal
// places and printed in its shortest form, so 0.1+0.2 shows as 0.3.
func FormatResult(v float64) string {
	if v == math.Trunc(v) {
		return Canonical(v)
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', displayDecimals, 64), 64)
	if err != nil {
		return Canonical(v)
	}
	return Canonical(rounded)
}

// Canonical is the unrounded string form stored back into the expression
// after an evaluation. It uses plain decimal notation for magnitudes in
// [1e-6, 1e21) and exponent notation such as 1e+21 or 1.5e-7 otherwise.
// Negative zero is printed as 0.
func Canonical(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

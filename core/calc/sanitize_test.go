// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calc

import (
	"errors"
	"testing"
)

func TestSanitize_Accepts(t *testing.T) {
	for _, in := range []string{"1+2", "sqrt(4)*(0-3)", "0.5/100", "1e+21+1", "1.5e-7", "2.e5"} {
		got, err := Sanitize(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != in {
			t.Fatalf("%q: expected input back, got %q", in, got)
		}
	}
}

func TestSanitize_Rejects(t *testing.T) {
	for _, in := range []string{"Math.sqrt(4)", "sqrt4", "sq(4)", "e5", "1e", "1e+", "2^3", "1 + 2", "alert(1)", "(1)e2"} {
		if _, err := Sanitize(in); !errors.Is(err, ErrInvalidExpression) {
			t.Fatalf("%q: expected ErrInvalidExpression, got %v", in, err)
		}
	}
}

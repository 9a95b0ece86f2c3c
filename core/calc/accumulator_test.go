// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calc

import (
	"testing"
)

// typeIn appends every byte of s as its own token, like pressing keys.
func typeIn(a *Accumulator, s string) {
	for _, r := range s {
		a.Append(string(r))
	}
}

func evalString(s string) *Accumulator {
	a := New()
	typeIn(a, s)
	a.Evaluate()
	return a
}

func TestEvaluate_Results(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2+3*4", "14"},
		{"(1+2", "3"},
		{"4/2", "2"},
		{"10/4", "2.5"},
		{"1/3", "0.3333333333"},
		{"2/3", "0.6666666667"},
		{"-5+2", "-3"},
		{"2*-3", "-6"},
		{"8-3-2", "3"},
		{"16/4/2", "2"},
		{"(0-5)*(0-3)", "15"},
		{"7%", "0.07"},
		{"0.1+0.2", "0.3"},
		{"1.5*2", "3"},
		{"5.", "5"},
		{"05+3", "8"},
		{"007", "7"},
		{"1000000000*1000000000000", "1e+21"},
	}
	for _, tc := range cases {
		a := evalString(tc.in)
		if got := a.Display(); got != tc.want {
			t.Fatalf("%q: expected display %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	for _, in := range []string{"5/0", "0/0", "2(3)", "()", "1.2.3", "5+", "2^3", "(1+2))"} {
		a := evalString(in)
		if a.Display() != ErrorMarker {
			t.Fatalf("%q: expected %q, got %q", in, ErrorMarker, a.Display())
		}
		if a.Expression() != "" {
			t.Fatalf("%q: expected expression reset, got %q", in, a.Expression())
		}
	}
}

func TestEvaluate_ChainsFromUnroundedResult(t *testing.T) {
	a := evalString("0.1+0.2")
	if a.Display() != "0.3" {
		t.Fatalf("expected display 0.3, got %q", a.Display())
	}
	if a.Expression() != "0.30000000000000004" {
		t.Fatalf("expected unrounded expression, got %q", a.Expression())
	}

	b := evalString("2+3")
	typeIn(b, "*2")
	if b.Display() != "5*2" {
		t.Fatalf("expected live expression 5*2, got %q", b.Display())
	}
	b.Evaluate()
	if b.Display() != "10" {
		t.Fatalf("expected 10, got %q", b.Display())
	}
}

func TestEvaluate_ChainsFromExponentResult(t *testing.T) {
	a := evalString("1000000000*1000000000000")
	if a.Expression() != "1e+21" {
		t.Fatalf("expected 1e+21, got %q", a.Expression())
	}
	typeIn(a, "*2")
	a.Evaluate()
	if a.Display() != "2e+21" {
		t.Fatalf("expected 2e+21, got %q", a.Display())
	}
}

func TestEvaluate_EmptyIsNoop(t *testing.T) {
	a := evalString("5/0")
	a.Evaluate()
	if a.Display() != ErrorMarker {
		t.Fatalf("expected display to stay %q, got %q", ErrorMarker, a.Display())
	}

	b := New()
	b.Evaluate()
	if b.Display() != "0" || b.Expression() != "" {
		t.Fatalf("expected untouched empty state, got %q / %q", b.Display(), b.Expression())
	}
}

func TestAppend_GuardOnEmpty(t *testing.T) {
	a := New()
	for _, tok := range []string{"+", ".", "*", "/"} {
		a.Append(tok)
		if a.Expression() != "" {
			t.Fatalf("%q: expected empty expression, got %q", tok, a.Expression())
		}
		if a.Display() != "0" {
			t.Fatalf("%q: expected display 0, got %q", tok, a.Display())
		}
	}

	a.Append("-")
	if a.Expression() != "-" {
		t.Fatalf("expected minus to be accepted, got %q", a.Expression())
	}
	a.Append("+")
	if a.Expression() != "-+" {
		t.Fatalf("guard must only apply to an empty expression, got %q", a.Expression())
	}
}

func TestAppend_GuardKeepsErrorDisplay(t *testing.T) {
	a := evalString("5/0")
	a.Append("+")
	if a.Display() != ErrorMarker {
		t.Fatalf("expected rejected token to leave display alone, got %q", a.Display())
	}
	a.Append("7")
	if a.Display() != "7" {
		t.Fatalf("expected fresh input after error, got %q", a.Display())
	}
}

func TestClear_Idempotent(t *testing.T) {
	a := New()
	typeIn(a, "12+3")
	for i := 0; i < 2; i++ {
		a.Clear()
		if a.Expression() != "" || a.Display() != "0" {
			t.Fatalf("clear #%d: got %q / %q", i, a.Expression(), a.Display())
		}
	}

	b := evalString("1/0")
	b.Clear()
	if b.Display() != "0" {
		t.Fatalf("expected clear after error to show 0, got %q", b.Display())
	}
}

func TestToggleSign_RoundTrip(t *testing.T) {
	for _, start := range []string{"5", "12+3", "(0-5)*(0-3)", "sqrt(9", "2*(1+", "2)", "5)+(3"} {
		a := New()
		typeIn(a, start)
		a.ToggleSign()
		if a.Expression() != "(0-"+start+")" {
			t.Fatalf("%q: expected wrapper, got %q", start, a.Expression())
		}
		a.ToggleSign()
		if a.Expression() != start {
			t.Fatalf("%q: expected round trip, got %q", start, a.Expression())
		}
	}
}

func TestToggleSign_TwiceRestoresWrapper(t *testing.T) {
	for _, start := range []string{"(0-5)", "(0-(0-5))", "(0-2))"} {
		a := New()
		typeIn(a, start)
		a.ToggleSign()
		a.ToggleSign()
		if a.Expression() != start {
			t.Fatalf("%q: expected two toggles to restore it, got %q", start, a.Expression())
		}
	}
}

func TestToggleSign_Evaluates(t *testing.T) {
	a := New()
	typeIn(a, "12+3")
	a.ToggleSign()
	a.Evaluate()
	if a.Display() != "-9" {
		t.Fatalf("expected 0-12+3 = -9, got %q", a.Display())
	}

	// toggling a negative result subtracts it from zero
	a.ToggleSign()
	if a.Expression() != "(0--9)" {
		t.Fatalf("expected (0--9), got %q", a.Expression())
	}
	a.Evaluate()
	if a.Display() != "9" {
		t.Fatalf("expected 9, got %q", a.Display())
	}
}

func TestToggleSign_EmptyIsNoop(t *testing.T) {
	var shown []string
	a := New(WithObserver(func(d string) { shown = append(shown, d) }))
	a.ToggleSign()
	if a.Expression() != "" || len(shown) != 0 {
		t.Fatalf("expected no-op, got %q and %d refreshes", a.Expression(), len(shown))
	}
}

func TestPercent_TrailingNumberOnly(t *testing.T) {
	a := New()
	typeIn(a, "3+50")
	a.Percent()
	if a.Expression() != "3+(50/100)" {
		t.Fatalf("expected 3+(50/100), got %q", a.Expression())
	}
	a.Evaluate()
	if a.Display() != "3.5" {
		t.Fatalf("expected 3.5, got %q", a.Display())
	}

	b := New()
	typeIn(b, "12.5")
	b.Percent()
	if b.Expression() != "(12.5/100)" {
		t.Fatalf("expected decimal literal to be rewritten, got %q", b.Expression())
	}
}

func TestPercent_ExponentResult(t *testing.T) {
	a := evalString("1000000000*1000000000000")
	a.Percent()
	if a.Expression() != "(1e+21/100)" {
		t.Fatalf("expected the whole exponent literal to be rewritten, got %q", a.Expression())
	}
	a.Evaluate()
	if a.Display() != "10000000000000000000" {
		t.Fatalf("expected 1e19, got %q", a.Display())
	}
}

func TestPercent_NoTrailingNumber(t *testing.T) {
	a := New()
	typeIn(a, "3+")
	a.Percent()
	if a.Expression() != "3+" {
		t.Fatalf("expected unchanged, got %q", a.Expression())
	}

	b := New()
	b.Percent()
	if b.Display() != "0" {
		t.Fatalf("expected 0 for empty expression, got %q", b.Display())
	}
}

func TestInsertSqrt(t *testing.T) {
	a := New()
	a.InsertSqrt()
	if a.Expression() != "sqrt(" || a.Display() != "sqrt(" {
		t.Fatalf("expected sqrt( on empty expression, got %q", a.Expression())
	}
	typeIn(a, "16")
	a.Evaluate()
	if a.Display() != "4" {
		t.Fatalf("expected 4, got %q", a.Display())
	}

	b := New()
	b.InsertSqrt()
	typeIn(b, "0-4")
	b.Evaluate()
	if b.Display() != ErrorMarker {
		t.Fatalf("expected ERROR for negative root, got %q", b.Display())
	}

	c := New()
	c.InsertSqrt()
	c.Evaluate()
	if c.Display() != ErrorMarker {
		t.Fatalf("expected ERROR for missing argument, got %q", c.Display())
	}
}

func TestBackspace(t *testing.T) {
	a := New()
	typeIn(a, "12")
	a.Backspace()
	if a.Expression() != "1" || a.Display() != "1" {
		t.Fatalf("expected 1, got %q / %q", a.Expression(), a.Display())
	}
	a.Backspace()
	if a.Expression() != "" || a.Display() != "0" {
		t.Fatalf("expected empty, got %q / %q", a.Expression(), a.Display())
	}
	a.Backspace()
	if a.Display() != "0" {
		t.Fatalf("expected backspace on empty to keep 0, got %q", a.Display())
	}
}

func TestObserver_SeesEveryRefresh(t *testing.T) {
	var shown []string
	a := New(WithObserver(func(d string) { shown = append(shown, d) }))
	typeIn(a, "1+1")
	a.Evaluate()
	a.Clear()

	want := []string{"1", "1+", "1+1", "2", "0"}
	if len(shown) != len(want) {
		t.Fatalf("expected %v, got %v", want, shown)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, shown)
		}
	}
}

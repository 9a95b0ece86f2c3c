// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const sqrtCall = "sqrt("

// Eval evaluates expr over the keypad grammar:
//
//	expr    := term   (('+' | '-') term)*
//	term    := unary  (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := number | '(' expr ')' | 'sqrt(' expr ')'
//
// Numbers are decimal literals with an optional exponent. Infinite and NaN
// results are reported as ErrNotFinite.
func Eval(expr string) (float64, error) {
	p := parser{input: expr}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.input) {
		return 0, p.unexpected(p.input[p.pos])
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) unexpected(ch byte) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected %q", ch)}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) parseExpr() (float64, error) {
	val, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return val, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			val += right
		} else {
			val -= right
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	val, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return val, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			val *= right
		} else {
			// IEEE division; x/0 becomes ±Inf or NaN and is rejected by Eval
			val /= right
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	switch ch, _ := p.peek(); ch {
	case '+':
		p.pos++
		return p.parseUnary()
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, &SyntaxError{Pos: p.pos, Msg: "unexpected end of expression"}
	}

	switch {
	case ch == '(':
		p.pos++
		return p.parseGroup()
	case strings.HasPrefix(p.input[p.pos:], sqrtCall):
		p.pos += len(sqrtCall)
		v, err := p.parseGroup()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	case isDigit(ch) || ch == '.':
		return p.parseNumber()
	}
	return 0, p.unexpected(ch)
}

// parseGroup parses the inside of a parenthesis whose opening bracket has
// already been consumed.
func (p *parser) parseGroup() (float64, error) {
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if ch, ok := p.peek(); !ok || ch != ')' {
		return 0, &SyntaxError{Pos: p.pos, Msg: "missing closing parenthesis"}
	}
	p.pos++
	return v, nil
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	j := p.pos

	digits := 0
	for j < len(p.input) && isDigit(p.input[j]) {
		j++
		digits++
	}
	if j < len(p.input) && p.input[j] == '.' {
		j++
		for j < len(p.input) && isDigit(p.input[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		p.pos = start
		return 0, &SyntaxError{Pos: start, Msg: "malformed number"}
	}

	// exponent, only present in stored results such as 1e+21
	if j < len(p.input) && (p.input[j] == 'e' || p.input[j] == 'E') {
		k := j + 1
		if k < len(p.input) && (p.input[k] == '+' || p.input[k] == '-') {
			k++
		}
		expDigits := 0
		for k < len(p.input) && isDigit(p.input[k]) {
			k++
			expDigits++
		}
		if expDigits == 0 {
			p.pos = j
			return 0, &SyntaxError{Pos: j, Msg: "malformed exponent"}
		}
		j = k
	}

	v, err := strconv.ParseFloat(p.input[start:j], 64)
	if err != nil {
		// out of range literals still parse to ±Inf, which Eval rejects
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			p.pos = start
			return 0, &SyntaxError{Pos: start, Msg: "malformed number"}
		}
	}
	p.pos = j
	return v, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calc holds the expression accumulator behind every keycalc front
// end. An Accumulator collects the tokens produced by buttons and keys into a
// textual infix expression and evaluates it with a small closed-grammar
// evaluator (numbers, + - * /, parentheses and sqrt). Evaluation errors never
// reach the caller: they surface only as the "ERROR" display marker.
package calc

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package gui shows the keypad in a desktop window. The window itself needs
// the gui build tag; the geometry below is shared with the tests.
package gui

import (
	"strings"

	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/util/slicest"
)

const (
	cellWidth     = 64
	cellHeight    = 40
	cellGap       = 4
	margin        = 8
	displayHeight = 32
)

// asciiLabels maps keypad glyphs to text the built-in debug font can draw.
var asciiLabels = strings.NewReplacer("÷", "/", "×", "*", "−", "-", "±", "+/-", "√", "sqrt", "⌫", "<-")

type grid struct {
	layout [][]input.Button
}

func (g grid) columns() int {
	return slicest.Reduce(g.layout, func(row []input.Button, n int) int {
		return max(n, len(row))
	})
}

// size is the window size in pixels.
func (g grid) size() (int, int) {
	cols, rows := g.columns(), len(g.layout)
	w := 2*margin + cols*cellWidth + (cols-1)*cellGap
	h := 3*margin + displayHeight + rows*cellHeight + (rows-1)*cellGap
	return w, h
}

// origin is the top left corner of the button at row, col.
func (g grid) origin(row, col int) (int, int) {
	x := margin + col*(cellWidth+cellGap)
	y := 2*margin + displayHeight + row*(cellHeight+cellGap)
	return x, y
}

// buttonAt hit-tests a pixel. Gaps between buttons hit nothing.
func (g grid) buttonAt(x, y int) (input.Button, bool) {
	x -= margin
	y -= 2*margin + displayHeight
	if x < 0 || y < 0 {
		return input.Button{}, false
	}
	col, row := x/(cellWidth+cellGap), y/(cellHeight+cellGap)
	if x%(cellWidth+cellGap) >= cellWidth || y%(cellHeight+cellGap) >= cellHeight {
		return input.Button{}, false
	}
	return input.At(g.layout, row, col)
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package gui

import (
	"testing"

	"github.com/toeirei/keycalc/core/input"
)

func TestGrid_ButtonAt(t *testing.T) {
	g := grid{layout: input.Layout()}

	x, y := g.origin(1, 2)
	b, ok := g.buttonAt(x+1, y+1)
	if !ok || b.Label != "9" {
		t.Fatalf("expected 9, got %+v %v", b, ok)
	}

	// the gap right of 9
	if _, ok := g.buttonAt(x+cellWidth+1, y+1); ok {
		t.Fatalf("expected the gap to hit nothing")
	}
	// the display area
	if _, ok := g.buttonAt(margin+1, margin+1); ok {
		t.Fatalf("expected the display to hit nothing")
	}
	// the missing fourth button of the last row
	x, y = g.origin(5, 3)
	if _, ok := g.buttonAt(x+1, y+1); ok {
		t.Fatalf("expected no button")
	}
}

func TestGrid_Size(t *testing.T) {
	g := grid{layout: input.Layout()}
	w, h := g.size()
	x, y := g.origin(5, 2)
	if x+cellWidth+margin > w || y+cellHeight+margin > h {
		t.Fatalf("last button %d,%d does not fit into %dx%d", x, y, w, h)
	}
}

func TestASCIILabels(t *testing.T) {
	for _, row := range input.Layout() {
		for _, b := range row {
			for _, r := range asciiLabels.Replace(b.Label) {
				if r > 127 {
					t.Fatalf("label %q is not ASCII after mapping", b.Label)
				}
			}
		}
	}
}

// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build gui

package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/toeirei/keycalc/core/calc"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/internal/logging"
)

var (
	background   = color.RGBA{0x20, 0x22, 0x28, 0xff}
	displayColor = color.RGBA{0x10, 0x11, 0x14, 0xff}
	buttonColor  = color.RGBA{0x3a, 0x3e, 0x48, 0xff}
	pressedColor = color.RGBA{0x5a, 0x7e, 0xc8, 0xff}
)

// namedKeys are the non-character keys the keyboard mapping knows.
var namedKeys = map[ebiten.Key]string{
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyEscape:      "esc",
}

type game struct {
	acc      *calc.Accumulator
	keyboard input.Keyboard
	grid     grid
	pressed  string
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b, ok := g.grid.buttonAt(ebiten.CursorPosition()); ok {
			g.pressed = b.Label
			input.Dispatch(g.acc, b.Event)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = ""
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		g.press(string(r))
	}
	for k, name := range namedKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.press(name)
		}
	}
	return nil
}

func (g *game) press(key string) {
	if ev, ok := g.keyboard.Lookup(key); ok {
		input.Dispatch(g.acc, ev)
		return
	}
	logging.Debugf("gui: no binding for %q", key)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w, _ := g.grid.size()

	vector.DrawFilledRect(screen, margin, margin, float32(w-2*margin), displayHeight, displayColor, false)
	text := g.acc.Display()
	// the debug font is 6 pixels wide
	ebitenutil.DebugPrintAt(screen, text, w-margin-6*len(text)-6, margin+displayHeight/2-8)

	for r, row := range g.grid.layout {
		for c, b := range row {
			x, y := g.grid.origin(r, c)
			fill := buttonColor
			if b.Label == g.pressed {
				fill = pressedColor
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), cellWidth, cellHeight, fill, false)

			label := asciiLabels.Replace(b.Label)
			ebitenutil.DebugPrintAt(screen, label, x+(cellWidth-6*len(label))/2, y+cellHeight/2-8)
		}
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.grid.size()
}

// Run opens the keypad window and blocks until it is closed.
func Run(keyboard input.Keyboard, title string) error {
	g := &game{
		acc:      calc.New(),
		keyboard: keyboard,
		grid:     grid{layout: input.Layout()},
	}
	w, h := g.grid.size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

package viewer

import (
	gocube "github.com/SeamusWaldron/gocube3d"
)

// Button layout, in screen pixels.
const (
	ButtonWidth  = 48
	ButtonHeight = 28
	ButtonGap    = 6
	PanelMargin  = 12
)

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Button dispatches one move when clicked.
type Button struct {
	Move gocube.Move
	Rect HitRect
}

// Label is the text drawn on the button.
func (b Button) Label() string {
	return b.Move.Notation()
}

// buttonMoves is the panel order: one row per face, clockwise then prime.
var buttonMoves = []gocube.Move{
	gocube.F, gocube.FPrime,
	gocube.B, gocube.BPrime,
	gocube.U, gocube.UPrime,
	gocube.D, gocube.DPrime,
	gocube.L, gocube.LPrime,
	gocube.R, gocube.RPrime,
}

// LayoutButtons places the twelve turn buttons in a two-column panel whose
// top-left corner is (x, y).
func LayoutButtons(x, y float64) []Button {
	buttons := make([]Button, len(buttonMoves))
	for i, m := range buttonMoves {
		col, row := i%2, i/2
		buttons[i] = Button{
			Move: m,
			Rect: HitRect{
				X:      x + float64(col)*(ButtonWidth+ButtonGap),
				Y:      y + float64(row)*(ButtonHeight+ButtonGap),
				Width:  ButtonWidth,
				Height: ButtonHeight,
			},
		}
	}
	return buttons
}

// ButtonAt returns the button under (x, y), if any.
func ButtonAt(buttons []Button, x, y float64) (Button, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Package notation provides move sequence utilities on top of the standard
// notation parsed by the gocube package.
package notation

import (
	gocube "github.com/SeamusWaldron/gocube3d"
)

// quarters returns the turn as a count of clockwise quarter turns.
func quarters(t gocube.Turn) int {
	switch t {
	case gocube.CCW:
		return 3
	case gocube.Double:
		return 2
	default:
		return 1
	}
}

// NormalizeTurn maps a count of clockwise quarter turns to a Turn.
// ok is false when the count is a multiple of four.
// -3 -> CW, -2 -> Double, -1 -> CCW, 1 -> CW, 2 -> Double, 3 -> CCW
func NormalizeTurn(q int) (turn gocube.Turn, ok bool) {
	switch ((q % 4) + 4) % 4 {
	case 1:
		return gocube.CW, true
	case 2:
		return gocube.Double, true
	case 3:
		return gocube.CCW, true
	}
	return 0, false
}

// Simplify merges runs of moves on the same face and drops runs that
// cancel out. R R becomes R2, R R' disappears, and a cancelled run lets
// its neighbours merge in turn.
func Simplify(moves []gocube.Move) []gocube.Move {
	out := make([]gocube.Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}

		turn, ok := NormalizeTurn(quarters(out[n-1].Turn) + quarters(m.Turn))
		if !ok {
			out = out[:n-1]
			continue
		}
		out[n-1].Turn = turn
		out[n-1].Time = m.Time
	}
	return out
}

// Invert returns the sequence that undoes moves: each move inverted, in
// reverse order.
func Invert(moves []gocube.Move) []gocube.Move {
	out := make([]gocube.Move, len(moves))
	for i, m := range moves {
		inv := m.Inverse()
		inv.Time = m.Time
		out[len(moves)-1-i] = inv
	}
	return out
}

package cube

import "strings"

// Net is the unfolded sticker layout, Net[face][position]. Each face has 9
// facelets indexed as seen from outside that face:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is read with B at the top, D with F at the top, and the four side faces
// with U at the top.
type Net [6][9]Color

// netSlot maps a face position to the grid slot holding that facelet.
func netSlot(f Face, row, col int) Coord {
	switch f {
	case U:
		return Coord{I: col, J: 2, K: 2 - row}
	case D:
		return Coord{I: col, J: 0, K: row}
	case F:
		return Coord{I: col, J: 2 - row, K: 0}
	case B:
		return Coord{I: 2 - col, J: 2 - row, K: 2}
	case R:
		return Coord{I: 2, J: 2 - row, K: col}
	case L:
		return Coord{I: 0, J: 2 - row, K: 2 - col}
	}
	return Coord{}
}

// Net reads the current sticker layout off the pieces at rest.
func (c *Cube) Net() Net {
	var n Net
	for _, f := range Faces {
		for pos := 0; pos < 9; pos++ {
			slot := netSlot(f, pos/3, pos%3)
			p := c.pieces[slot.I][slot.J][slot.K]
			n[f][pos] = p.Sticker(f.Surface())
		}
	}
	return n
}

// IsSolved returns true if the cube's pieces are in the solved state.
func (c *Cube) IsSolved() bool {
	return c.Net().IsSolved()
}

// IsSolved reports whether every face shows a single color.
func (n Net) IsSolved() bool {
	for _, f := range Faces {
		for i := 1; i < 9; i++ {
			if n[f][i] != n[f][0] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the net.
func (n Net) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(n[U][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(n[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(n[D][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

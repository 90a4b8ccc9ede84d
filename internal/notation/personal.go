package notation

import (
	"strings"

	gocube "github.com/SeamusWaldron/gocube3d"
)

// Describe spells a move out in plain words.
// Reference frame: White on top, Red in front, facing the cube.
//
// Mapping:
//
//	R  -> "R up"                 R' -> "R down"
//	L  -> "L down"               L' -> "L up"
//	U  -> "Top left"             U' -> "Top right"
//	D  -> "Bottom right"         D' -> "Bottom left"
//	F  -> "Front clockwise"      F' -> "Front anti-clockwise"
//	B  -> "Back clockwise"       B' -> "Back anti-clockwise"
//
// Double turns append " x 2" to the clockwise phrase.
func Describe(m gocube.Move) string {
	var cw, ccw string
	switch m.Face {
	case gocube.FaceR:
		cw, ccw = "R up", "R down"
	case gocube.FaceL:
		cw, ccw = "L down", "L up"
	case gocube.FaceU:
		cw, ccw = "Top left", "Top right"
	case gocube.FaceD:
		cw, ccw = "Bottom right", "Bottom left"
	case gocube.FaceF:
		cw, ccw = "Front clockwise", "Front anti-clockwise"
	case gocube.FaceB:
		cw, ccw = "Back clockwise", "Back anti-clockwise"
	default:
		return m.Notation() // Fallback to standard notation
	}

	switch m.Turn {
	case gocube.CW:
		return cw
	case gocube.CCW:
		return ccw
	case gocube.Double:
		return cw + " x 2"
	}
	return m.Notation()
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []gocube.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}

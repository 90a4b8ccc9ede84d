package gocube

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeamusWaldron/gocube3d/internal/cube"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// CubeFace converts the notation face to the cube model's face.
func (f Face) CubeFace() (cube.Face, error) {
	switch f {
	case FaceR:
		return cube.R, nil
	case FaceL:
		return cube.L, nil
	case FaceU:
		return cube.U, nil
	case FaceD:
		return cube.D, nil
	case FaceF:
		return cube.F, nil
	case FaceB:
		return cube.B, nil
	default:
		return 0, fmt.Errorf("face %q: %w", string(f), ErrUnknownFace)
	}
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move with face, turn direction, and optional timestamp.
type Move struct {
	Face Face      // Which face to turn
	Turn Turn      // Direction and amount
	Time time.Time // When the move was dispatched (optional)
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Angle returns the requested rotation angle for the move, in degrees.
// The cube turns a face counter-clockwise (seen from outside it) for
// positive angles, so clockwise moves are -90.
func (m Move) Angle() (float64, error) {
	switch m.Turn {
	case CW:
		return -90, nil
	case CCW:
		return 90, nil
	case Double:
		return 180, nil
	default:
		return 0, fmt.Errorf("move %s turn %d: %w", m.Face, m.Turn, ErrUnsupportedAngle)
	}
}

// MoveFor returns the notation move for turning face by angle degrees.
func MoveFor(face cube.Face, angle float64) (Move, error) {
	if !face.Valid() {
		return Move{}, fmt.Errorf("move for %v: %w", face, ErrUnknownFace)
	}
	m := Move{Face: Face(face.String())}
	switch angle {
	case -90:
		m.Turn = CW
	case 90:
		m.Turn = CCW
	case 180, -180:
		m.Turn = Double
	default:
		return Move{}, fmt.Errorf("move for %s by %g: %w", face, angle, ErrUnsupportedAngle)
	}
	return m, nil
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract face
	faceChar := s[0]
	var face Face
	switch faceChar {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidNotation)
	}

	// Extract turn
	turn := CW // Default is clockwise
	if len(s) > 1 {
		suffix := s[1:]
		switch suffix {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidNotation)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

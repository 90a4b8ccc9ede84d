package gocube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/gocube3d/internal/cube"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R`", RPrime},
		{"R2", R2},
		{"u", U},
		{" F2' ", F2},
		{"B'", BPrime},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "M"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves error: %v", err)
	}
	if got := FormatMoves(moves); got != "R U R' U'" {
		t.Errorf("FormatMoves = %q", got)
	}

	if _, err := ParseMoves("R Q U"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with bad token error = %v", err)
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}

func TestInverse(t *testing.T) {
	if R.Inverse() != RPrime || RPrime.Inverse() != R || R2.Inverse() != R2 {
		t.Error("Inverse mismatch")
	}
}

func TestMoveAngle(t *testing.T) {
	tests := []struct {
		m    Move
		want float64
	}{
		{R, -90},
		{RPrime, 90},
		{R2, 180},
	}
	for _, tt := range tests {
		got, err := tt.m.Angle()
		if err != nil || got != tt.want {
			t.Errorf("%s.Angle() = %v, %v; want %v", tt.m, got, err, tt.want)
		}
	}

	if _, err := (Move{Face: FaceR, Turn: 3}).Angle(); !errors.Is(err, ErrUnsupportedAngle) {
		t.Errorf("bad turn error = %v", err)
	}
}

func TestCubeFace(t *testing.T) {
	want := map[Face]cube.Face{
		FaceF: cube.F, FaceB: cube.B, FaceU: cube.U,
		FaceD: cube.D, FaceL: cube.L, FaceR: cube.R,
	}
	for f, cf := range want {
		got, err := f.CubeFace()
		if err != nil || got != cf {
			t.Errorf("%s.CubeFace() = %v, %v", f, got, err)
		}
	}
	if _, err := Face("X").CubeFace(); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("Face(X) error = %v", err)
	}
}

func TestMoveFor(t *testing.T) {
	for _, m := range []Move{R, RPrime, R2, U, DPrime, B2} {
		face, _ := m.Face.CubeFace()
		angle, _ := m.Angle()
		got, err := MoveFor(face, angle)
		if err != nil || got != m {
			t.Errorf("MoveFor(%s, %v) = %v, %v; want %v", face, angle, got, err, m)
		}
	}
	if _, err := MoveFor(cube.F, 45); !errors.Is(err, ErrUnsupportedAngle) {
		t.Errorf("MoveFor 45 error = %v", err)
	}
	if _, err := MoveFor(cube.Face(9), 90); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("MoveFor bad face error = %v", err)
	}
}

func TestAlgorithm(t *testing.T) {
	moves, ok := Algorithm("tperm")
	if !ok || len(moves) != 14 {
		t.Errorf("tperm = %v, %v", moves, ok)
	}
	if _, ok := Algorithm("nope"); ok {
		t.Error("unknown algorithm should not be found")
	}
}

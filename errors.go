package gocube

import (
	"errors"

	"github.com/SeamusWaldron/gocube3d/internal/cube"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")

	// Contract violations, shared with the cube model
	ErrUnknownFace      = cube.ErrUnknownFace
	ErrInvalidCoord     = cube.ErrInvalidCoord
	ErrUnsupportedAngle = cube.ErrUnsupportedAngle
	ErrInvalidOption    = cube.ErrInvalidOption
)

package gocube

import "github.com/SeamusWaldron/gocube3d/internal/cube"

// Option configures a Cube.
type Option = cube.Option

// Cube options. See the cube package for details.
var (
	// WithPermutation re-slots turned pieces once a turn completes. Off by
	// default: turns then only animate and the logical state never changes.
	WithPermutation = cube.WithPermutation

	// WithClock replaces the wall clock used to time turns.
	WithClock = cube.WithClock

	// WithEasing sets the interpolation curve of a turn (default linear).
	WithEasing = cube.WithEasing

	// WithEdgeLength sets the edge length of one piece (default 1.0).
	WithEdgeLength = cube.WithEdgeLength

	// WithSpacing sets piece spacing as a multiple of the edge (default 1.1).
	WithSpacing = cube.WithSpacing

	// WithGap sets the cosmetic shrink factor of drawn pieces (default 0.98).
	WithGap = cube.WithGap

	// WithLogger sets the logger for turn debug output.
	WithLogger = cube.WithLogger
)

package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// Contract violations
	ErrUnknownFace      = errors.New("gocube: unknown face")
	ErrInvalidCoord     = errors.New("gocube: grid coordinate out of range")
	ErrUnsupportedAngle = errors.New("gocube: unsupported turn angle")

	// Construction
	ErrInvalidOption = errors.New("gocube: invalid cube option")
)

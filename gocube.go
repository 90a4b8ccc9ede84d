// Package gocube models a 3x3x3 Rubik's cube in 3D and animates its face
// turns.
//
// # Features
//
//   - Geometry for all 27 pieces with colored stickers
//   - Time-based face-turn animation with pluggable easing
//   - Optional permutation so the logical state follows the turns
//   - Standard move notation (R, U', F2) and predefined algorithms
//   - A move player that queues turns one after another
//
// # Quick Start
//
//	cube, err := gocube.NewCube(gocube.WithPermutation(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	player := gocube.NewPlayer(cube)
//	moves, _ := gocube.ParseMoves("R U R' U'")
//	player.Enqueue(moves...)
//
//	// Once per frame:
//	player.Step()
//	cube.Render(ctx)
//
// # Angles
//
// Cube.Rotate takes a face and an angle in degrees. A positive angle turns
// the face counter-clockwise as seen from outside it, so notation R is
// Rotate(R, -90) and R' is Rotate(R, 90). Move.Angle performs this mapping.
//
// # Predefined Moves
//
//	gocube.R      // Right clockwise
//	gocube.RPrime // Right counter-clockwise
//	gocube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package gocube

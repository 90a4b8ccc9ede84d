package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	gocube "github.com/SeamusWaldron/gocube3d"
)

// Input is one tick of user input, decoupled from ebiten so the game logic
// can be driven directly.
type Input struct {
	CursorX, CursorY int

	// Left mouse button state
	JustPressed  bool
	Pressed      bool
	JustReleased bool

	Moves    []gocube.Move // keyboard turns, in key order
	RunQueue bool          // play the configured algorithm
	Reset    bool
	Quit     bool
}

// faceKeys maps letter keys to faces. Shift selects the prime turn.
var faceKeys = []struct {
	key  ebiten.Key
	face gocube.Face
}{
	{ebiten.KeyF, gocube.FaceF},
	{ebiten.KeyB, gocube.FaceB},
	{ebiten.KeyU, gocube.FaceU},
	{ebiten.KeyD, gocube.FaceD},
	{ebiten.KeyL, gocube.FaceL},
	{ebiten.KeyR, gocube.FaceR},
}

// keyMove returns the move a face key selects.
func keyMove(face gocube.Face, shift bool) gocube.Move {
	if shift {
		return gocube.Move{Face: face, Turn: gocube.CCW}
	}
	return gocube.Move{Face: face, Turn: gocube.CW}
}

// pollInput reads the current ebiten input state.
func pollInput() Input {
	var in Input
	in.CursorX, in.CursorY = ebiten.CursorPosition()
	in.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, fk := range faceKeys {
		if inpututil.IsKeyJustPressed(fk.key) {
			in.Moves = append(in.Moves, keyMove(fk.face, shift))
		}
	}

	in.RunQueue = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Reset = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

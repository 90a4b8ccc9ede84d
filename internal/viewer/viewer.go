// Package viewer is the interactive 3D window: it draws the cube with a
// perspective camera, orbits on drag and turns faces from a button panel or
// the keyboard.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	gocube "github.com/SeamusWaldron/gocube3d"
	"github.com/SeamusWaldron/gocube3d/internal/camera"
	"github.com/SeamusWaldron/gocube3d/internal/config"
	"github.com/SeamusWaldron/gocube3d/internal/notation"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

var (
	backgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x24, A: 0xff}
	outlineColor    = color.RGBA{A: 0xff}
	buttonColor     = color.RGBA{R: 0x7d, G: 0x56, B: 0xf4, A: 0xff}
	buttonEdge      = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	statusColor     = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

// Game implements ebiten.Game for the cube viewer.
type Game struct {
	cfg     config.Config
	cube    *gocube.Cube
	player  *gocube.Player
	cam     camera.Camera
	buttons []Button
	alg     []gocube.Move
	initial []gocube.Move
	log     *slog.Logger

	dragging     bool
	lastX, lastY int
	width        int
	height       int

	rec   render.Recorder
	white *ebiten.Image
	face  text.Face
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the viewer's logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithAlgorithm sets the sequence Space plays.
func WithAlgorithm(moves []gocube.Move) Option {
	return func(g *Game) {
		g.alg = moves
	}
}

// WithMoves queues moves to play as soon as the window opens.
func WithMoves(moves []gocube.Move) Option {
	return func(g *Game) {
		g.initial = append(g.initial, moves...)
	}
}

// New creates a viewer for c.
func New(c *gocube.Cube, cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		cube:    c,
		cam:     camera.FromConfig(cfg.Camera),
		buttons: LayoutButtons(PanelMargin, PanelMargin),
		alg:     gocube.SexyMove,
		log:     slog.New(slog.DiscardHandler),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.player = gocube.NewPlayer(c, gocube.WithPlayerLogger(g.log), gocube.OnMove(func(m gocube.Move) {
		g.log.Info("move", "notation", m.Notation())
	}))
	g.player.Enqueue(g.initial...)
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetTPS(g.cfg.Window.TPS)
	g.log.Info("viewer started", "width", g.cfg.Window.Width, "height", g.cfg.Window.Height)
	return ebiten.RunGame(g)
}

// Player returns the move queue the viewer drives.
func (g *Game) Player() *gocube.Player {
	return g.player
}

// Camera returns the current camera pose.
func (g *Game) Camera() camera.Camera {
	return g.cam
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.handle(pollInput())
}

// handle applies one tick of input.
func (g *Game) handle(in Input) error {
	if in.Quit {
		return ebiten.Termination
	}

	switch {
	case in.JustPressed:
		if b, ok := ButtonAt(g.buttons, float64(in.CursorX), float64(in.CursorY)); ok {
			g.dispatch(b.Move)
			break
		}
		g.dragging = true
		g.lastX, g.lastY = in.CursorX, in.CursorY
	case in.Pressed && g.dragging:
		g.cam.Orbit(float32(in.CursorX-g.lastX), float32(in.CursorY-g.lastY))
		g.lastX, g.lastY = in.CursorX, in.CursorY
	}
	if in.JustReleased || !in.Pressed {
		g.dragging = false
	}

	for _, m := range in.Moves {
		g.dispatch(m)
	}
	if in.RunQueue {
		g.player.Enqueue(g.alg...)
		g.log.Debug("algorithm queued", "moves", gocube.FormatMoves(g.alg))
	}
	if in.Reset {
		g.player.Clear()
		if err := g.cube.Reset(); err != nil {
			return fmt.Errorf("reset cube: %w", err)
		}
		g.log.Info("cube reset")
	}

	if _, _, err := g.player.Step(); err != nil {
		g.log.Warn("queued move rejected", "err", err)
		g.player.Clear()
	}
	return nil
}

// dispatch turns a face right away, replacing any turn in flight.
func (g *Game) dispatch(m gocube.Move) {
	if err := gocube.Apply(g.cube, m); err != nil {
		g.log.Warn("move rejected", "move", m.Notation(), "err", err)
		return
	}
	g.log.Info("move", "notation", m.Notation())
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	polys, err := g.frame()
	if err != nil {
		g.log.Error("render failed", "err", err)
		return
	}
	for _, p := range polys {
		g.drawPolygon(screen, p)
	}
	g.drawButtons(screen)
	g.drawStatus(screen)
}

// frame renders the cube and returns its visible polygons, farthest first.
func (g *Game) frame() ([]camera.Polygon, error) {
	g.rec.Reset()
	if err := g.cube.Render(render.NewContext(&g.rec)); err != nil {
		return nil, err
	}
	return g.cam.Polygons(g.rec.Quads, g.width, g.height), nil
}

func (g *Game) whiteImage() *ebiten.Image {
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return g.white
}

func (g *Game) textFace() text.Face {
	if g.face == nil {
		g.face = text.NewGoXFace(basicfont.Face7x13)
	}
	return g.face
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func (g *Game) drawPolygon(screen *ebiten.Image, p camera.Polygon) {
	r := float32(p.Color.R) / 0xff
	gr := float32(p.Color.G) / 0xff
	b := float32(p.Color.B) / 0xff

	verts := make([]ebiten.Vertex, 4)
	for i, pt := range p.Points {
		verts[i] = ebiten.Vertex{
			DstX: pt.X(), DstY: pt.Y(),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: 1,
		}
	}
	screen.DrawTriangles(verts, quadIndices, g.whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if !g.cfg.Cube.Outline {
		return
	}
	for _, seg := range p.Outline() {
		a, b := seg[0], seg[1]
		vector.StrokeLine(screen, a.X(), a.Y(), b.X(), b.Y(), 1.5, outlineColor, true)
	}
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	face := g.textFace()
	for _, b := range g.buttons {
		r := b.Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), buttonColor, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, buttonEdge, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(r.X+r.Width/2, r.Y+r.Height/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, b.Label(), face, op)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.width)-PanelMargin, float64(g.height)-PanelMargin)
	op.PrimaryAlign = text.AlignEnd
	op.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(statusColor)
	text.Draw(screen, g.Status(), g.textFace(), op)
}

// Status is the one-line summary drawn in the corner.
func (g *Game) Status() string {
	s := "idle"
	if turn, ok := g.cube.Current(); ok {
		if m, err := gocube.MoveFor(turn.Face, turn.Target); err == nil {
			s = fmt.Sprintf("%s %3.0f%%  %s", m.Notation(), turn.Completion*100, notation.Describe(m))
		}
	}
	if n := g.player.Pending(); n > 0 {
		s += fmt.Sprintf("  queued %d", n)
	}
	if g.cube.Permutes() && g.cube.IsSolved() {
		s += "  solved"
	}
	return s
}

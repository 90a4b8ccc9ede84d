package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	gocube "github.com/SeamusWaldron/gocube3d"
	"github.com/SeamusWaldron/gocube3d/internal/notation"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// playFrameRate is how often the model advances the turn in flight.
const playFrameRate = 30

const progressWidth = 20

type playTickMsg time.Time

// playModel drives the cube from the keyboard and shows its net.
type playModel struct {
	cube     *gocube.Cube
	player   *gocube.Player
	alg      []gocube.Move
	plain    bool
	history  []gocube.Move // every applied move since the last reset
	frames   render.Counter
	err      error
	quitting bool
}

func newPlayModel(c *gocube.Cube, alg []gocube.Move, plain bool) *playModel {
	m := &playModel{
		cube:  c,
		alg:   alg,
		plain: plain,
	}
	m.player = gocube.NewPlayer(c, gocube.WithPlayerLogger(logger), gocube.OnMove(func(mv gocube.Move) {
		m.history = append(m.history, mv)
	}))
	return m
}

func playTick() tea.Cmd {
	return tea.Tick(time.Second/playFrameRate, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	return playTick()
}

// keyFaces maps lower-case keys to faces; upper case selects the prime turn.
var keyFaces = map[string]gocube.Face{
	"f": gocube.FaceF, "b": gocube.FaceB,
	"u": gocube.FaceU, "d": gocube.FaceD,
	"l": gocube.FaceL, "r": gocube.FaceR,
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			m.player.Enqueue(m.alg...)

		case "z":
			m.undo()

		case "backspace":
			m.player.Clear()
			m.history = nil
			m.err = m.cube.Reset()
		}

		if face, ok := keyFaces[key]; ok {
			m.dispatch(gocube.Move{Face: face, Turn: gocube.CW})
		} else if face, ok := keyFaces[strings.ToLower(key)]; ok {
			m.dispatch(gocube.Move{Face: face, Turn: gocube.CCW})
		}

	case playTickMsg:
		m.advance()
		return m, playTick()
	}

	return m, nil
}

// dispatch turns a face right away. A turn in flight is dropped, so it
// leaves the history too.
func (m *playModel) dispatch(mv gocube.Move) {
	preempted := m.cube.Rotating()
	if m.err = gocube.Apply(m.cube, mv); m.err != nil {
		return
	}
	if preempted && len(m.history) > 0 {
		m.history = m.history[:len(m.history)-1]
	}
	m.history = append(m.history, mv)
}

// undo queues the moves that take the cube back to where the history
// started.
func (m *playModel) undo() {
	m.player.Clear()
	m.player.Enqueue(notation.Invert(notation.Simplify(m.history))...)
}

// advance runs one frame: next queued move, then the turn in flight.
func (m *playModel) advance() {
	if _, _, err := m.player.Step(); err != nil {
		m.err = err
		m.player.Clear()
	}
	if err := m.cube.Render(render.NewContext(&m.frames)); err != nil {
		m.err = err
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("gocube3d"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube.Net(), m.plain))
	b.WriteString("\n\n")

	if turn, ok := m.cube.Current(); ok {
		name, desc := turn.Face.String(), ""
		if mv, err := gocube.MoveFor(turn.Face, turn.Target); err == nil {
			name, desc = mv.Notation(), notation.Describe(mv)
		}
		b.WriteString(fmt.Sprintf("Turning: %s %s %3.0f%%  %s\n",
			moveStyle.Render(fmt.Sprintf("%-3s", name)), progressBar(turn.Completion), turn.Completion*100,
			statusStyle.Render(desc)))
	} else {
		b.WriteString(statusStyle.Render("Idle"))
		b.WriteString("\n")
	}

	if n := m.player.Pending(); n > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Queued: %d", n)))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		start := 0
		b.WriteString("Moves: ")
		if len(m.history) > 20 {
			start = len(m.history) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(gocube.FormatMoves(m.history[start:])))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  (%d, %d simplified)", len(m.history), len(notation.Simplify(m.history)))))
		b.WriteString("\n")
	}

	if !m.cube.Permutes() {
		b.WriteString(statusStyle.Render("Animation only: the net does not follow turns"))
		b.WriteString("\n")
	} else if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("f/b/u/d/l/r=turn  SHIFT=prime  SPACE=alg  z=undo all  BACKSPACE=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// progressBar draws completion in [0, 1] as a fixed-width bar.
func progressBar(completion float64) string {
	filled := int(completion * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}

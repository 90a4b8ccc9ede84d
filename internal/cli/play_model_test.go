package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube3d"
)

func newTestPlayModel(t *testing.T) (*playModel, *manualClock) {
	t.Helper()
	clk := newManualClock()
	c, err := gocube.NewCube(gocube.WithClock(clk.Now), gocube.WithPermutation(true))
	require.NoError(t, err)
	return newPlayModel(c, gocube.SexyMove, true), clk
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// tickAfter advances the clock by d and delivers one frame tick.
func tickAfter(m *playModel, clk *manualClock, d time.Duration) {
	clk.Advance(d)
	m.Update(playTickMsg(clk.Now()))
}

func TestPlayModelTurnAndUndo(t *testing.T) {
	m, clk := newTestPlayModel(t)
	assert.Contains(t, m.View(), "SOLVED")

	m.Update(runeKey('r'))
	require.True(t, m.cube.Rotating())

	tickAfter(m, clk, m.cube.Duration()/4)
	view := m.View()
	assert.Contains(t, view, "Turning:")
	assert.Contains(t, view, "R ")
	assert.Contains(t, view, "[#####---------------]")

	tickAfter(m, clk, m.cube.Duration())
	assert.False(t, m.cube.Rotating())
	assert.False(t, m.cube.IsSolved())
	assert.NotContains(t, m.View(), "SOLVED")

	m.Update(runeKey('R'))
	tickAfter(m, clk, m.cube.Duration())
	assert.True(t, m.cube.IsSolved())
	assert.NoError(t, m.err)
}

func TestPlayModelSpaceQueuesAlgorithm(t *testing.T) {
	m, clk := newTestPlayModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 4, m.player.Pending())

	for i := 0; i < 10; i++ {
		tickAfter(m, clk, m.cube.Duration())
	}
	assert.Len(t, m.player.Played(), 4)
	assert.Contains(t, m.View(), "R U R' U'")
}

func TestPlayModelReset(t *testing.T) {
	m, clk := newTestPlayModel(t)
	m.Update(runeKey('f'))
	tickAfter(m, clk, m.cube.Duration())
	require.False(t, m.cube.IsSolved())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, m.cube.IsSolved())
	assert.Zero(t, m.player.Pending())
}

func TestPlayModelQuit(t *testing.T) {
	m, _ := newTestPlayModel(t)
	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Bye.\n", m.View())
}

func TestPlayModelAnimationOnlyNote(t *testing.T) {
	c, err := gocube.NewCube()
	require.NoError(t, err)
	m := newPlayModel(c, nil, true)
	assert.Contains(t, m.View(), "Animation only")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[--------------------]", progressBar(0))
	assert.Equal(t, "[##########----------]", progressBar(0.5))
	assert.Equal(t, "[####################]", progressBar(1.5))
	assert.Equal(t, "[--------------------]", progressBar(-1))
}

func TestRenderNetPlainMatchesNetString(t *testing.T) {
	m, _ := newTestPlayModel(t)
	n := m.cube.Net()
	assert.Equal(t, n.String(), renderNet(n, true))

	colored := renderNet(n, false)
	assert.Equal(t, 9, len(strings.Split(colored, "\n")))
}

func TestPlayModelUndoAll(t *testing.T) {
	m, clk := newTestPlayModel(t)
	for _, r := range "rruF" {
		m.Update(runeKey(r))
		tickAfter(m, clk, m.cube.Duration())
	}
	require.False(t, m.cube.IsSolved())
	assert.Contains(t, m.View(), "(4, 3 simplified)")

	m.Update(runeKey('z'))
	assert.Equal(t, 3, m.player.Pending())
	for i := 0; i < 8; i++ {
		tickAfter(m, clk, m.cube.Duration())
	}
	assert.True(t, m.cube.IsSolved())
}

func TestPlayModelPreemptDropsHistory(t *testing.T) {
	m, clk := newTestPlayModel(t)
	m.Update(runeKey('r'))
	tickAfter(m, clk, m.cube.Duration()/2)
	m.Update(runeKey('u'))
	tickAfter(m, clk, m.cube.Duration())

	assert.Equal(t, "U", gocube.FormatMoves(m.history))
}

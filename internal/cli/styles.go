package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube3d/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles holds one background style per sticker color.
var stickerStyles = func() map[cube.Color]lipgloss.Style {
	styles := make(map[cube.Color]lipgloss.Style)
	for c := cube.NoSticker; c <= cube.Orange; c++ {
		rgba := c.RGBA()
		hex := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
		styles[c] = lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color("0"))
	}
	return styles
}()

// renderNet draws the unfolded net with colored cells. plain falls back to
// the letter layout.
func renderNet(n cube.Net, plain bool) string {
	if plain {
		return n.String()
	}

	cell := func(c cube.Color) string {
		return stickerStyles[c].Render(" " + c.String() + " ")
	}
	face := func(f cube.Face, row int) string {
		s := ""
		for col := 0; col < 3; col++ {
			s += cell(n[f][row*3+col])
		}
		return s
	}
	blank := "         "

	var lines []string
	for row := 0; row < 3; row++ {
		lines = append(lines, blank+face(cube.U, row))
	}
	for row := 0; row < 3; row++ {
		lines = append(lines, face(cube.L, row)+face(cube.F, row)+face(cube.R, row)+face(cube.B, row))
	}
	for row := 0; row < 3; row++ {
		lines = append(lines, blank+face(cube.D, row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

package cube

import "image/color"

// Color represents a sticker color.
type Color byte

const (
	NoSticker Color = 0 // interior-facing surfaces
	White     Color = 1 // Up face when solved
	Yellow    Color = 2 // Down face when solved
	Green     Color = 3 // Left face when solved
	Blue      Color = 4 // Right face when solved
	Red       Color = 5 // Front face when solved
	Orange    Color = 6 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case NoSticker:
		return "."
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// RGBA returns the solid fill used to draw the sticker.
func (c Color) RGBA() color.RGBA {
	switch c {
	case White:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Yellow:
		return color.RGBA{R: 255, G: 255, A: 255}
	case Green:
		return color.RGBA{G: 255, A: 255}
	case Blue:
		return color.RGBA{B: 255, A: 255}
	case Red:
		return color.RGBA{R: 255, A: 255}
	case Orange:
		return color.RGBA{R: 255, G: 128, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

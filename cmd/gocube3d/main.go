// gocube3d - interactive 3D Rubik's Cube explorer.
package main

import (
	"github.com/SeamusWaldron/gocube3d/internal/cli"
)

func main() {
	cli.Execute()
}

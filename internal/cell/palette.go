package cell

import (
	"image/color"

	"github.com/gogpu/maze/grid"
)

// Palette holds the fixed colors the planner paints with.
type Palette struct {
	// Background is the shade of a cleared cell and of EraseShade.
	Background color.RGBA

	// ShadeWall colors the Top and Left walls.
	ShadeWall color.RGBA

	// LightWall colors the Right and Bottom walls.
	LightWall color.RGBA
}

// DefaultPalette returns white cells with gray walls. The wall grays sit
// one step off the standard gray (128) and light gray (192) so cells shaded
// with those colors keep their walls visible.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ShadeWall:  color.RGBA{R: 127, G: 127, B: 127, A: 255},
		LightWall:  color.RGBA{R: 193, G: 193, B: 193, A: 255},
	}
}

// WallColor returns the color of the wall on side. It panics for Center.
func (p Palette) WallColor(side grid.Side) color.RGBA {
	switch side {
	case grid.Top, grid.Left:
		return p.ShadeWall
	case grid.Right, grid.Bottom:
		return p.LightWall
	}
	panic("cell: no wall on side " + side.String())
}

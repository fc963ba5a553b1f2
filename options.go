package maze

import (
	"image/color"

	"github.com/gogpu/maze/internal/cell"
	"github.com/gogpu/maze/text"
)

// StateMode selects where a Canvas reads the current layers of a cell
// before mutating it.
type StateMode int

const (
	// StateLedger keeps an explicit per-cell record next to the pixels.
	// Layers painted in the same color as the shade stay known.
	StateLedger StateMode = iota

	// StatePixel reads the layers back from probe pixels and keeps no
	// record. A layer painted in the shade color is invisible to it.
	StatePixel
)

func (m StateMode) String() string {
	switch m {
	case StateLedger:
		return "ledger"
	case StatePixel:
		return "pixel"
	}
	return "unknown"
}

// DefaultHeaderHeight is the height of the blank bar above the grid.
const DefaultHeaderHeight = 24

// Palette holds the fixed colors of a Canvas.
type Palette struct {
	// Background fills a cleared canvas and erased shades.
	Background color.RGBA

	// ShadeWall colors Top and Left cell walls, and the right and bottom
	// frame bands.
	ShadeWall color.RGBA

	// LightWall colors Right and Bottom cell walls, and the top and left
	// frame bands.
	LightWall color.RGBA

	// Caption colors the caption text.
	Caption color.RGBA
}

// DefaultPalette returns white cells, walls one step off the standard grays
// and a crimson caption.
func DefaultPalette() Palette {
	p := cell.DefaultPalette()
	return Palette{
		Background: p.Background,
		ShadeWall:  p.ShadeWall,
		LightWall:  p.LightWall,
		Caption:    CaptionColor,
	}
}

func (p Palette) cell() cell.Palette {
	return cell.Palette{
		Background: p.Background,
		ShadeWall:  p.ShadeWall,
		LightWall:  p.LightWall,
	}
}

// Option configures a Canvas during creation.
//
// Example:
//
//	cv, err := maze.New(10, 10, 24,
//	    maze.WithScale(2),
//	    maze.WithStateMode(maze.StatePixel),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	mode         StateMode
	backend      string
	scale        int
	headerHeight int
	captionFace  *text.Face
	palette      Palette
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		mode:         StateLedger,
		backend:      "", // best available
		scale:        1,
		headerHeight: DefaultHeaderHeight,
		palette:      DefaultPalette(),
	}
}

// WithStateMode selects how cell state is read. The default is StateLedger.
func WithStateMode(m StateMode) Option {
	return func(o *options) {
		if m == StateLedger || m == StatePixel {
			o.mode = m
		}
	}
}

// WithBackend creates the surface with the named backend from the
// surface registry instead of the best available one.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithScale sets the number of device pixels per logical pixel.
// Values below 1 are ignored.
func WithScale(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.scale = n
		}
	}
}

// WithHeaderHeight sets the height of the blank bar above the grid.
// Negative values are ignored.
func WithHeaderHeight(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.headerHeight = px
		}
	}
}

// WithCaptionFace sets the face captions are drawn with.
// The default is Go Regular at 12 points.
func WithCaptionFace(face *text.Face) Option {
	return func(o *options) {
		o.captionFace = face
	}
}

// WithPalette replaces the canvas colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

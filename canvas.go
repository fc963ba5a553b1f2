package maze

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/maze/grid"
	"github.com/gogpu/maze/internal/cell"
	"github.com/gogpu/maze/internal/compositor"
	"github.com/gogpu/maze/internal/probe"
	"github.com/gogpu/maze/surface"
)

// Default grid dimensions used by NewDefault.
const (
	DefaultRows      = 16
	DefaultCols      = 24
	DefaultCellWidth = 20
)

// minCaptionBar is the smallest height of the caption area below the grid.
const minCaptionBar = 16

// Canvas draws a rows x cols maze on a raster surface.
//
// Every cell has independently drawable and erasable layers: a shade, four
// walls, four paths and a center marker. Drawing or erasing one layer
// leaves the others visible.
//
// The layout, in logical pixels, is a blank header bar, one cell width of
// margin around the grid holding a beveled frame, and a caption area below.
//
// Mutating methods return false, without drawing anything, when the canvas
// is not open or the cell is outside the grid.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	rows      int
	cols      int
	cellWidth int
	opts      options
	geom      *grid.Geometry

	// valid while open
	surf   surface.Surface
	pixel  *probe.PixelProber
	ledger *probe.Ledger
	comp   *compositor.Compositor

	caption string
}

// New creates a closed canvas for a rows x cols grid of cellWidth-wide
// cells. Call Open before drawing.
func New(rows, cols, cellWidth int, opts ...Option) (*Canvas, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	geom, err := grid.NewGeometry(cellWidth, image.Pt(cellWidth, o.headerHeight+cellWidth))
	if err != nil {
		return nil, fmt.Errorf("maze: cell width %d: %w", cellWidth, err)
	}

	return &Canvas{
		rows:      rows,
		cols:      cols,
		cellWidth: cellWidth,
		opts:      o,
		geom:      geom,
	}, nil
}

// NewDefault creates a closed 16 x 24 canvas of 20-pixel cells.
func NewDefault(opts ...Option) *Canvas {
	cv, err := New(DefaultRows, DefaultCols, DefaultCellWidth, opts...)
	if err != nil {
		panic(err) // the default dimensions are valid
	}
	return cv
}

// Rows returns the number of grid rows.
func (cv *Canvas) Rows() int { return cv.rows }

// Cols returns the number of grid columns.
func (cv *Canvas) Cols() int { return cv.cols }

// CellWidth returns the cell size in logical pixels.
func (cv *Canvas) CellWidth() int { return cv.cellWidth }

// StateMode returns how the canvas reads cell state.
func (cv *Canvas) StateMode() StateMode { return cv.opts.mode }

// IsOpen reports whether the canvas has a surface to draw on.
func (cv *Canvas) IsOpen() bool {
	return cv.surf != nil && cv.surf.IsOpen()
}

// Size returns the canvas size in logical pixels.
func (cv *Canvas) Size() (width, height int) {
	return (cv.cols + 2) * cv.cellWidth,
		cv.opts.headerHeight + (cv.rows+1)*cv.cellWidth + cv.captionBar()
}

// captionBar is the height of the area below the grid.
func (cv *Canvas) captionBar() int {
	return max(minCaptionBar, cv.cellWidth)
}

// Open creates the surface and clears it. It returns false if the canvas
// is already open or no surface could be created.
func (cv *Canvas) Open() bool {
	if cv.IsOpen() {
		return false
	}

	w, h := cv.Size()
	sopts := surface.DefaultOptions(w, h)
	sopts.Scale = cv.opts.scale
	sopts.BackgroundColor = cv.opts.palette.Background
	var (
		s   surface.Surface
		err error
	)
	if cv.opts.backend != "" {
		s, err = surface.NewSurfaceByName(cv.opts.backend, sopts)
	} else {
		s, err = surface.NewSurface(sopts)
	}
	if err != nil {
		Logger().Warn("maze: surface creation failed",
			"backend", cv.opts.backend, "width", w, "height", h, "err", err)
		return false
	}

	cv.surf = s
	cv.pixel = probe.NewPixelProber(s, cv.geom, cv.rows, cv.cols)
	cv.ledger = probe.NewLedger(cv.rows, cv.cols, cv.opts.palette.Background)

	var state compositor.StateSource = cv.ledger
	if cv.opts.mode == StatePixel {
		state = cv.pixel
	}
	cv.comp = compositor.New(s, cv.geom, state, cv.opts.palette.cell())

	cv.Clear()
	Logger().Info("maze: canvas opened",
		"rows", cv.rows, "cols", cv.cols, "cellWidth", cv.cellWidth,
		"width", w, "height", h, "scale", cv.opts.scale, "mode", cv.opts.mode)
	return true
}

// Clear paints the background, the header and the frame, and forgets all
// cell layers and the caption. It returns false if the canvas is not open.
func (cv *Canvas) Clear() bool {
	if !cv.IsOpen() {
		return false
	}
	pal := cv.opts.palette

	cv.surf.Clear(pal.Background)

	// Beveled frame: light on the top and left, shaded on the right and bottom.
	frame := cv.geom.Frame(cv.rows, cv.cols)
	colors := [4]color.RGBA{pal.LightWall, pal.LightWall, pal.ShadeWall, pal.ShadeWall}
	for i, r := range frame {
		cv.fillRect(r, colors[i])
	}

	cv.ledger.Reset(pal.Background)
	cv.caption = ""
	Logger().Info("maze: canvas cleared")
	return true
}

// Close releases the surface. It returns false if the canvas is not open.
func (cv *Canvas) Close() bool {
	if !cv.IsOpen() {
		return false
	}
	if err := cv.surf.Close(); err != nil {
		Logger().Warn("maze: surface close failed", "err", err)
	}
	cv.surf, cv.pixel, cv.ledger, cv.comp = nil, nil, nil, nil
	cv.caption = ""
	Logger().Info("maze: canvas closed")
	return true
}

// DrawCell fills the cell at (row, col) with white and walls all four sides.
// Paths and the center marker are removed.
func (cv *Canvas) DrawCell(row, col int) bool {
	return cv.DrawCellColor(row, col, White)
}

// DrawCellColor fills the cell at (row, col) with c and walls all four
// sides. Paths and the center marker are removed.
func (cv *Canvas) DrawCellColor(row, col int, c color.Color) bool {
	return cv.applyColor(row, col, c, cell.DrawCell)
}

// DrawShade refills the cell at (row, col) with c, keeping its walls, paths
// and center marker.
func (cv *Canvas) DrawShade(row, col int, c color.Color) bool {
	return cv.applyColor(row, col, c, cell.DrawShade)
}

// EraseShade refills the cell at (row, col) with the background color,
// keeping its walls, paths and center marker.
func (cv *Canvas) EraseShade(row, col int) bool {
	return cv.apply(row, col, cell.EraseShade())
}

// DrawWall draws the wall on side of the cell at (row, col). Center has no
// wall; the call succeeds without drawing.
func (cv *Canvas) DrawWall(row, col int, side Side) bool {
	return cv.apply(row, col, cell.DrawWall(side))
}

// EraseWall removes the wall on side of the cell at (row, col).
func (cv *Canvas) EraseWall(row, col int, side Side) bool {
	return cv.apply(row, col, cell.EraseWall(side))
}

// DrawPath draws a path of color c from side to the center of the cell at
// (row, col). A path on Center draws the center marker.
func (cv *Canvas) DrawPath(row, col int, side Side, c color.Color) bool {
	return cv.applyColor(row, col, c, func(rgba color.RGBA) cell.Op {
		return cell.DrawPath(side, rgba)
	})
}

// ErasePath removes the path on side of the cell at (row, col). Erasing
// the path on Center erases the center marker.
func (cv *Canvas) ErasePath(row, col int, side Side) bool {
	return cv.apply(row, col, cell.ErasePath(side))
}

// DrawCenter draws the center marker of the cell at (row, col) in c.
func (cv *Canvas) DrawCenter(row, col int, c color.Color) bool {
	return cv.applyColor(row, col, c, cell.DrawCenter)
}

// EraseCenter removes the center marker of the cell at (row, col).
func (cv *Canvas) EraseCenter(row, col int) bool {
	return cv.apply(row, col, cell.EraseCenter())
}

// Probe returns the layers of the cell at (row, col) as the canvas knows
// them: from the ledger by default, from pixels in StatePixel mode.
func (cv *Canvas) Probe(row, col int) (CellState, bool) {
	if !cv.IsOpen() {
		return CellState{}, false
	}
	return cv.comp.State().Snapshot(grid.Coord{Row: row, Col: col})
}

// SampleProbe returns the layers of the cell at (row, col) as read from
// the pixels, whatever the state mode.
func (cv *Canvas) SampleProbe(row, col int) (CellState, bool) {
	if !cv.IsOpen() {
		return CellState{}, false
	}
	return cv.pixel.Snapshot(grid.Coord{Row: row, Col: col})
}

// Image returns a copy of the device pixels, or nil if the canvas is not
// open.
func (cv *Canvas) Image() *image.RGBA {
	if !cv.IsOpen() {
		return nil
	}
	return cv.surf.Snapshot()
}

// SavePNG writes the canvas to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	if !cv.IsOpen() {
		return ErrNotOpen
	}
	return surface.SavePNG(path, cv.surf)
}

// EncodePNG writes the canvas to w as PNG.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	if !cv.IsOpen() {
		return ErrNotOpen
	}
	return surface.EncodePNG(w, cv.surf)
}

func (cv *Canvas) applyColor(row, col int, c color.Color, op func(color.RGBA) cell.Op) bool {
	if c == nil {
		cv.reject(op(color.RGBA{}), row, col, "nil color")
		return false
	}
	return cv.apply(row, col, op(opaque(c)))
}

func (cv *Canvas) apply(row, col int, op cell.Op) bool {
	at := grid.Coord{Row: row, Col: col}
	switch {
	case !cv.IsOpen():
		cv.reject(op, row, col, "not open")
		return false
	case !at.In(cv.rows, cv.cols):
		cv.reject(op, row, col, "out of range")
		return false
	}
	if err := cv.comp.Apply(at, op); err != nil {
		cv.reject(op, row, col, err.Error())
		return false
	}
	return true
}

func (cv *Canvas) reject(op cell.Op, row, col int, reason string) {
	Logger().Debug("maze: cell operation rejected",
		"row", row, "col", col, "op", op.String(), "reason", reason)
}

func (cv *Canvas) fillRect(r image.Rectangle, c color.Color) {
	cv.surf.SetColor(c)
	cv.surf.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

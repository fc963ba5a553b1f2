package grid

import (
	"errors"
	"image"
)

// MinCellWidth is the smallest cell width for which the shade probe point
// stays clear of every wall, path and center pixel.
const MinCellWidth = 6

// ErrCellTooSmall is returned by NewGeometry for cell widths below MinCellWidth.
var ErrCellTooSmall = errors.New("grid: cell width below minimum")

// Region selects which band of a cell a rectangle describes.
type Region uint8

const (
	// RegionCell is the whole cell box.
	RegionCell Region = iota
	// RegionWall is the wall band along a border side.
	RegionWall
	// RegionPath is the path band from a border side to the center square.
	RegionPath
	// RegionCenter is the center marker square.
	RegionCenter
)

func (r Region) String() string {
	switch r {
	case RegionCell:
		return "cell"
	case RegionWall:
		return "wall"
	case RegionPath:
		return "path"
	case RegionCenter:
		return "center"
	}
	return "region?"
}

// sideLayout holds the per-side rectangles and probe points, relative to
// the cell origin.
type sideLayout struct {
	wall      image.Rectangle
	path      image.Rectangle
	wallProbe image.Point
	pathProbe image.Point
}

// Geometry converts cell coordinates into logical pixel rectangles.
// A Geometry is immutable once built.
type Geometry struct {
	cellWidth int
	pen       int
	gap       int
	pathWidth int
	offset    int

	// base is the logical position of cell (0, 0).
	base image.Point

	layout [sideCount]sideLayout
}

// NewGeometry builds the layout for cells of the given width whose
// cell (0, 0) starts at base.
func NewGeometry(cellWidth int, base image.Point) (*Geometry, error) {
	if cellWidth < MinCellWidth {
		return nil, ErrCellTooSmall
	}

	pen := min(2, max(1, cellWidth/10))
	gap := (cellWidth - 2*pen) / 4
	pathWidth := max(1, cellWidth-2*pen-2*gap)
	off := (cellWidth - pathWidth) / 2

	g := &Geometry{
		cellWidth: cellWidth,
		pen:       pen,
		gap:       gap,
		pathWidth: pathWidth,
		offset:    off,
		base:      base,
	}

	cw, pw := cellWidth, pathWidth
	g.layout[Top] = sideLayout{
		wall:      image.Rect(0, 0, cw, pen),
		path:      image.Rect(off, 0, off+pw, off),
		wallProbe: image.Pt(pen, 0),
		pathProbe: image.Pt(off, off-1),
	}
	g.layout[Left] = sideLayout{
		wall:      image.Rect(0, 0, pen, cw),
		path:      image.Rect(0, off, off, off+pw),
		wallProbe: image.Pt(0, pen),
		pathProbe: image.Pt(off-1, off),
	}
	g.layout[Right] = sideLayout{
		wall:      image.Rect(cw-pen, 0, cw, cw),
		path:      image.Rect(off+pw, off, cw, off+pw),
		wallProbe: image.Pt(cw-pen, pen),
		pathProbe: image.Pt(off+pw, off),
	}
	g.layout[Bottom] = sideLayout{
		wall:      image.Rect(0, cw-pen, cw, cw),
		path:      image.Rect(off, off+pw, off+pw, cw),
		wallProbe: image.Pt(pen, cw-pen),
		pathProbe: image.Pt(off, off+pw),
	}
	// The center has no wall; its "path" is the marker square.
	g.layout[Center] = sideLayout{
		path:      image.Rect(off, off, off+pw, off+pw),
		pathProbe: image.Pt(cw/2, cw/2),
	}
	return g, nil
}

// CellWidth returns the cell box size.
func (g *Geometry) CellWidth() int { return g.cellWidth }

// Pen returns the wall band thickness.
func (g *Geometry) Pen() int { return g.pen }

// Gap returns the margin between a wall band and the path band.
func (g *Geometry) Gap() int { return g.gap }

// PathWidth returns the path band thickness.
func (g *Geometry) PathWidth() int { return g.pathWidth }

// Offset returns the distance from a cell edge to the center square.
func (g *Geometry) Offset() int { return g.offset }

// Base returns the logical position of cell (0, 0).
func (g *Geometry) Base() image.Point { return g.base }

// Origin returns the logical top-left corner of the cell at c.
func (g *Geometry) Origin(c Coord) image.Point {
	return image.Pt(g.base.X+c.Col*g.cellWidth, g.base.Y+c.Row*g.cellWidth)
}

// Rect returns the logical rectangle of region r on side s of cell c.
// Side is ignored for RegionCell and RegionCenter. The empty rectangle is
// returned for combinations that do not exist, such as a wall on Center.
func (g *Geometry) Rect(c Coord, r Region, s Side) image.Rectangle {
	var rel image.Rectangle
	switch r {
	case RegionCell:
		rel = image.Rect(0, 0, g.cellWidth, g.cellWidth)
	case RegionCenter:
		rel = g.layout[Center].path
	case RegionWall:
		if !s.IsBorder() {
			return image.Rectangle{}
		}
		rel = g.layout[s].wall
	case RegionPath:
		if !s.Valid() {
			return image.Rectangle{}
		}
		rel = g.layout[s].path
	default:
		return image.Rectangle{}
	}
	return rel.Add(g.Origin(c))
}

// ShadeProbe returns the point sampled for the shade color of cell c.
// It lies inside the cell, past the wall bands and before the path bands.
func (g *Geometry) ShadeProbe(c Coord) image.Point {
	return g.Origin(c).Add(image.Pt(g.pen, g.pen))
}

// CenterProbe returns the geometric center of cell c.
func (g *Geometry) CenterProbe(c Coord) image.Point {
	return g.Origin(c).Add(image.Pt(g.cellWidth/2, g.cellWidth/2))
}

// WallProbe returns a pixel inside the wall band of side s that no other
// wall band covers. ok is false for Center.
func (g *Geometry) WallProbe(c Coord, s Side) (image.Point, bool) {
	if !s.IsBorder() {
		return image.Point{}, false
	}
	return g.Origin(c).Add(g.layout[s].wallProbe), true
}

// PathProbe returns a pixel inside the path band of side s, next to the
// center square. For Center it is the center probe.
func (g *Geometry) PathProbe(c Coord, s Side) (image.Point, bool) {
	if !s.Valid() {
		return image.Point{}, false
	}
	return g.Origin(c).Add(g.layout[s].pathProbe), true
}

// Frame returns the four border bands drawn around a rows x cols grid, in
// the order top, left, right, bottom. Each band is 2*pen thick and lies
// outside the cells.
func (g *Geometry) Frame(rows, cols int) [4]image.Rectangle {
	bw := 2 * g.pen
	x0 := g.base.X - bw
	y0 := g.base.Y - bw
	w := cols*g.cellWidth + 2*bw
	h := rows*g.cellWidth + 2*bw
	return [4]image.Rectangle{
		image.Rect(x0, y0, x0+w, y0+bw),
		image.Rect(x0, y0, x0+bw, y0+h),
		image.Rect(x0+w-bw, y0, x0+w, y0+h),
		image.Rect(x0, y0+h-bw, x0+w, y0+h),
	}
}

// CaptionBand returns the area below the frame of a rows x cols grid that
// holds the caption text, height px tall.
func (g *Geometry) CaptionBand(rows, cols, height int) image.Rectangle {
	top := g.base.Y + rows*g.cellWidth + 2*g.pen
	return image.Rect(g.base.X, top, g.base.X+cols*g.cellWidth, top+max(0, height-2*g.pen))
}

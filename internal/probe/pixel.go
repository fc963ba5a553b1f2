package probe

import (
	"image/color"

	"github.com/gogpu/maze/grid"
	"github.com/gogpu/maze/internal/cell"
	"github.com/gogpu/maze/surface"
)

// PixelProber reconstructs cell snapshots from surface pixels.
type PixelProber struct {
	surf       surface.Surface
	geom       *grid.Geometry
	rows, cols int
}

// NewPixelProber returns a prober for a rows x cols grid laid out by geom
// on surf.
func NewPixelProber(surf surface.Surface, geom *grid.Geometry, rows, cols int) *PixelProber {
	return &PixelProber{surf: surf, geom: geom, rows: rows, cols: cols}
}

func (p *PixelProber) usable(c grid.Coord) bool {
	return p.surf != nil && p.surf.IsOpen() && c.In(p.rows, p.cols)
}

func (p *PixelProber) at(x, y int) color.RGBA {
	return p.surf.PixelAt(x, y)
}

// SampleShade returns the color at the shade probe of c.
func (p *PixelProber) SampleShade(c grid.Coord) (color.RGBA, bool) {
	if !p.usable(c) {
		return color.RGBA{}, false
	}
	pt := p.geom.ShadeProbe(c)
	return p.at(pt.X, pt.Y), true
}

// SampleCenter returns the color at the center probe of c.
func (p *PixelProber) SampleCenter(c grid.Coord) (color.RGBA, bool) {
	if !p.usable(c) {
		return color.RGBA{}, false
	}
	pt := p.geom.CenterProbe(c)
	return p.at(pt.X, pt.Y), true
}

// ProbeWalls returns the sides of c whose wall probe differs from shade.
func (p *PixelProber) ProbeWalls(c grid.Coord, shade color.RGBA) (grid.SideSet, bool) {
	if !p.usable(c) {
		return 0, false
	}
	var walls grid.SideSet
	for _, side := range grid.Borders {
		pt, _ := p.geom.WallProbe(c, side)
		if p.at(pt.X, pt.Y) != shade {
			walls = walls.With(side)
		}
	}
	return walls, true
}

// ProbePaths returns the colors of the sides of c, Center included, whose
// path probe differs from shade.
func (p *PixelProber) ProbePaths(c grid.Coord, shade color.RGBA) (map[grid.Side]color.RGBA, bool) {
	if !p.usable(c) {
		return nil, false
	}
	var paths map[grid.Side]color.RGBA
	for _, side := range grid.Sides {
		pt, _ := p.geom.PathProbe(c, side)
		if got := p.at(pt.X, pt.Y); got != shade {
			if paths == nil {
				paths = make(map[grid.Side]color.RGBA, 2)
			}
			paths[side] = got
		}
	}
	return paths, true
}

// Snapshot reads every layer of c.
func (p *PixelProber) Snapshot(c grid.Coord) (cell.Snapshot, bool) {
	shade, ok := p.SampleShade(c)
	if !ok {
		return cell.Snapshot{}, false
	}
	center, _ := p.SampleCenter(c)
	walls, _ := p.ProbeWalls(c, shade)
	paths, _ := p.ProbePaths(c, shade)
	return cell.Snapshot{
		Shade:  shade,
		Center: center,
		Walls:  walls,
		Paths:  paths,
	}, true
}

// Commit does nothing: the pixels already hold the new state.
func (p *PixelProber) Commit(grid.Coord, cell.Snapshot) {}

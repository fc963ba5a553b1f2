// Package compositor applies cell mutations to a surface.
package compositor

import (
	"errors"
	"fmt"

	"github.com/gogpu/maze/grid"
	"github.com/gogpu/maze/internal/cell"
	"github.com/gogpu/maze/surface"
)

// ErrNoState is returned when the state source cannot describe a cell,
// because the surface is closed or the coordinate is outside the grid.
var ErrNoState = errors.New("compositor: cell state unavailable")

// StateSource reports the current layers of a cell and records new ones.
type StateSource interface {
	Snapshot(c grid.Coord) (cell.Snapshot, bool)
	Commit(c grid.Coord, s cell.Snapshot)
}

// Compositor executes planned fills on a surface.
// It is not safe for concurrent use.
type Compositor struct {
	surf  surface.Surface
	geom  *grid.Geometry
	state StateSource
	pal   cell.Palette
}

// New returns a Compositor painting on surf.
func New(surf surface.Surface, geom *grid.Geometry, state StateSource, pal cell.Palette) *Compositor {
	return &Compositor{surf: surf, geom: geom, state: state, pal: pal}
}

// State returns the source the compositor reads cells from.
func (c *Compositor) State() StateSource {
	return c.state
}

// Apply mutates the cell at coord. Nothing is painted unless the current
// state was read and the plan succeeded.
func (c *Compositor) Apply(at grid.Coord, op cell.Op) error {
	if !c.surf.IsOpen() {
		return ErrNoState
	}
	prev, ok := c.state.Snapshot(at)
	if !ok {
		return ErrNoState
	}
	next, paints, err := cell.Plan(prev, op, c.pal)
	if err != nil {
		return fmt.Errorf("compositor: %v: %w", op, err)
	}
	for _, p := range paints {
		c.paint(at, p)
	}
	c.state.Commit(at, next)
	return nil
}

func (c *Compositor) paint(at grid.Coord, p cell.Paint) {
	r := c.geom.Rect(at, p.Region, p.Side)
	if r.Empty() {
		return
	}
	c.surf.SetColor(p.Color)
	c.surf.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

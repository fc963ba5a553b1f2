package cell

import (
	"errors"
	"image/color"

	"github.com/gogpu/maze/grid"
)

// ErrInvalidOp is returned by Plan for unknown kinds and sides.
var ErrInvalidOp = errors.New("cell: invalid operation")

// Paint is one rectangle fill, relative to the cell being mutated.
type Paint struct {
	Region grid.Region
	Side   grid.Side
	Color  color.RGBA
}

// Plan computes the result of applying op to a cell in state prev.
//
// It returns the next state and the fills that take the pixels from prev to
// next, in painting order. prev is not modified. Wall operations on
// grid.Center are accepted and produce no fills.
func Plan(prev Snapshot, op Op, pal Palette) (Snapshot, []Paint, error) {
	if !op.Side.Valid() {
		return prev, nil, ErrInvalidOp
	}

	p := planner{next: prev.Clone(), pal: pal}
	switch op.Kind {
	case KindDrawCell:
		p.drawCell(op.Color)
	case KindDrawShade:
		p.drawShade(op.Color)
	case KindEraseShade:
		p.drawShade(pal.Background)
	case KindDrawWall:
		p.drawWall(op.Side)
	case KindEraseWall:
		p.eraseWall(op.Side)
	case KindDrawPath:
		p.drawPath(op.Side, op.Color)
	case KindErasePath:
		p.erasePath(op.Side)
	case KindDrawCenter:
		p.drawPath(grid.Center, op.Color)
	case KindEraseCenter:
		p.erasePath(grid.Center)
	default:
		return prev, nil, ErrInvalidOp
	}
	return p.next, p.paints, nil
}

type planner struct {
	next   Snapshot
	pal    Palette
	paints []Paint
}

func (p *planner) fill(r grid.Region, side grid.Side, c color.RGBA) {
	p.paints = append(p.paints, Paint{Region: r, Side: side, Color: c})
}

func (p *planner) fillWall(side grid.Side) {
	p.fill(grid.RegionWall, side, p.pal.WallColor(side))
}

// restorePath repaints the path on side if the cell has one.
func (p *planner) restorePath(side grid.Side) {
	if c, ok := p.next.Path(side); ok {
		p.fill(grid.RegionPath, side, c)
	}
}

func (p *planner) drawCell(c color.RGBA) {
	p.fill(grid.RegionCell, grid.Center, c)
	for _, side := range grid.Borders {
		p.fillWall(side)
	}
	p.next = Snapshot{Shade: c, Center: c, Walls: grid.AllBorders}
}

func (p *planner) drawShade(c color.RGBA) {
	p.fill(grid.RegionCell, grid.Center, c)
	for _, side := range grid.Borders {
		if p.next.Walls.Has(side) {
			p.fillWall(side)
		}
	}
	for _, side := range grid.Borders {
		p.restorePath(side)
	}
	if center, ok := p.next.Path(grid.Center); ok {
		p.fill(grid.RegionCenter, grid.Center, center)
	} else {
		p.next.Center = c
	}
	p.next.Shade = c
}

func (p *planner) drawWall(side grid.Side) {
	if !side.IsBorder() {
		return
	}
	p.fillWall(side)
	p.restorePath(side)
	p.next.Walls = p.next.Walls.With(side)
}

func (p *planner) eraseWall(side grid.Side) {
	a, b, ok := side.Orthogonal()
	if !ok {
		return
	}
	p.fill(grid.RegionWall, side, p.next.Shade)

	// The erased band covered the corners of both orthogonal walls, and
	// repainting those walls covers the end of their paths.
	for _, o := range [2]grid.Side{a, b} {
		if p.next.Walls.Has(o) {
			p.fillWall(o)
			p.restorePath(o)
		}
	}
	p.restorePath(side)
	p.next.Walls = p.next.Walls.Without(side)
}

func (p *planner) drawPath(side grid.Side, c color.RGBA) {
	if side == grid.Center {
		p.fill(grid.RegionCenter, grid.Center, c)
	} else {
		p.fill(grid.RegionPath, side, c)
	}
	p.next.setPath(side, c)
}

func (p *planner) erasePath(side grid.Side) {
	if side == grid.Center {
		p.fill(grid.RegionCenter, grid.Center, p.next.Shade)
		p.next.clearPath(side)
		return
	}
	p.fill(grid.RegionPath, side, p.next.Shade)
	if p.next.Walls.Has(side) {
		p.fillWall(side)
	}
	p.next.clearPath(side)
}

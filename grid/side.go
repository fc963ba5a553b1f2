// Package grid maps maze cells to pixel rectangles and probe points.
//
// A grid is a rectangle of square cells addressed by zero-based (row, column)
// coordinates. Every cell is drawn inside its own cellWidth x cellWidth box,
// so no two cells share a pixel. Within a cell the layout is fixed by three
// derived constants:
//
//	pen       = clamp(cellWidth/10, 1, 2)    wall band thickness
//	gap       = (cellWidth - 2*pen) / 4      margin between wall and path
//	pathWidth = max(1, cellWidth-2*pen-2*gap) path band thickness
//
// Everything in this package is pure arithmetic; nothing touches pixels.
package grid

import (
	"strconv"
	"strings"
)

// Side identifies one of the four borders of a cell, or its interior.
type Side uint8

const (
	// Left is the border at the cell's minimum x.
	Left Side = iota
	// Right is the border at the cell's maximum x.
	Right
	// Top is the border at the cell's minimum y.
	Top
	// Bottom is the border at the cell's maximum y.
	Bottom
	// Center is the interior marker area, not a border.
	Center

	sideCount
)

// Borders lists the four border sides in the order walls and paths are
// repainted. The order is part of the output: where two wall bands share a
// corner pixel, the later one wins.
var Borders = [4]Side{Top, Left, Right, Bottom}

// Sides lists every side, Center last.
var Sides = [5]Side{Left, Right, Top, Bottom, Center}

var sideNames = [sideCount]string{"left", "right", "top", "bottom", "center"}

// String returns the lowercase side name.
func (s Side) String() string {
	if s < sideCount {
		return sideNames[s]
	}
	return "side(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the five defined sides.
func (s Side) Valid() bool {
	return s < sideCount
}

// IsBorder reports whether s is one of Left, Right, Top, Bottom.
func (s Side) IsBorder() bool {
	return s < Center
}

// Orthogonal returns the two border sides whose wall bands share corner
// pixels with s. Center has none.
func (s Side) Orthogonal() (Side, Side, bool) {
	switch s {
	case Top, Bottom:
		return Left, Right, true
	case Left, Right:
		return Top, Bottom, true
	default:
		return s, s, false
	}
}

// ParseSide converts a side name (case-insensitive) to a Side.
func ParseSide(name string) (Side, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sideNames {
		if n == name {
			return Side(i), true
		}
	}
	return 0, false
}

// SideSet is a small set of sides.
type SideSet uint8

// AllBorders contains Left, Right, Top and Bottom.
const AllBorders = SideSet(1<<Left | 1<<Right | 1<<Top | 1<<Bottom)

// NewSideSet returns a set containing the given sides.
func NewSideSet(sides ...Side) SideSet {
	var s SideSet
	for _, side := range sides {
		s = s.With(side)
	}
	return s
}

// Has reports whether side is in the set.
func (s SideSet) Has(side Side) bool {
	return side.Valid() && s&(1<<side) != 0
}

// With returns a copy of the set with side added.
func (s SideSet) With(side Side) SideSet {
	if !side.Valid() {
		return s
	}
	return s | 1<<side
}

// Without returns a copy of the set with side removed.
func (s SideSet) Without(side Side) SideSet {
	if !side.Valid() {
		return s
	}
	return s &^ (1 << side)
}

// Len returns the number of sides in the set.
func (s SideSet) Len() int {
	n := 0
	for _, side := range Sides {
		if s.Has(side) {
			n++
		}
	}
	return n
}

// Slice returns the members in Sides order.
func (s SideSet) Slice() []Side {
	out := make([]Side, 0, s.Len())
	for _, side := range Sides {
		if s.Has(side) {
			out = append(out, side)
		}
	}
	return out
}

// String formats the set as {left,top}.
func (s SideSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, side := range s.Slice() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(side.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// In reports whether c lies inside a rows x cols grid.
func (c Coord) In(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Index returns the row-major index of c in a grid with cols columns.
func (c Coord) Index(cols int) int {
	return c.Row*cols + c.Col
}

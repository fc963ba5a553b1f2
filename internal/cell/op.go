package cell

import (
	"image/color"
	"strconv"

	"github.com/gogpu/maze/grid"
)

// Kind identifies a cell mutation.
type Kind uint8

const (
	KindDrawCell Kind = iota
	KindDrawShade
	KindEraseShade
	KindDrawWall
	KindEraseWall
	KindDrawPath
	KindErasePath
	KindDrawCenter
	KindEraseCenter
)

var kindNames = [...]string{
	KindDrawCell:    "drawCell",
	KindDrawShade:   "drawShade",
	KindEraseShade:  "eraseShade",
	KindDrawWall:    "drawWall",
	KindEraseWall:   "eraseWall",
	KindDrawPath:    "drawPath",
	KindErasePath:   "erasePath",
	KindDrawCenter:  "drawCenter",
	KindEraseCenter: "eraseCenter",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Op is one mutation of a cell. Side is used by the wall and path kinds,
// Color by the draw kinds other than DrawWall.
type Op struct {
	Kind  Kind
	Side  grid.Side
	Color color.RGBA
}

func (o Op) String() string {
	switch o.Kind {
	case KindDrawWall, KindEraseWall, KindErasePath:
		return o.Kind.String() + "(" + o.Side.String() + ")"
	case KindDrawPath:
		return o.Kind.String() + "(" + o.Side.String() + ", " + hexColor(o.Color) + ")"
	case KindDrawCell, KindDrawShade, KindDrawCenter:
		return o.Kind.String() + "(" + hexColor(o.Color) + ")"
	}
	return o.Kind.String()
}

// DrawCell fills the cell with c and walls all four sides.
func DrawCell(c color.RGBA) Op { return Op{Kind: KindDrawCell, Color: c} }

// DrawShade refills the cell with c, keeping every other layer.
func DrawShade(c color.RGBA) Op { return Op{Kind: KindDrawShade, Color: c} }

// EraseShade refills the cell with the background, keeping every other layer.
func EraseShade() Op { return Op{Kind: KindEraseShade} }

// DrawWall draws the wall on side.
func DrawWall(side grid.Side) Op { return Op{Kind: KindDrawWall, Side: side} }

// EraseWall removes the wall on side.
func EraseWall(side grid.Side) Op { return Op{Kind: KindEraseWall, Side: side} }

// DrawPath draws a path of color c from side to the center square.
func DrawPath(side grid.Side, c color.RGBA) Op {
	return Op{Kind: KindDrawPath, Side: side, Color: c}
}

// ErasePath removes the path on side.
func ErasePath(side grid.Side) Op { return Op{Kind: KindErasePath, Side: side} }

// DrawCenter draws the center marker in c.
func DrawCenter(c color.RGBA) Op { return Op{Kind: KindDrawCenter, Color: c} }

// EraseCenter removes the center marker.
func EraseCenter() Op { return Op{Kind: KindEraseCenter} }

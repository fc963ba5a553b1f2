package maze

import (
	"github.com/gogpu/maze/grid"
	"github.com/gogpu/maze/internal/cell"
)

// Side names a border of a cell, or its Center.
type Side = grid.Side

// Sides of a cell.
const (
	Left   = grid.Left
	Right  = grid.Right
	Top    = grid.Top
	Bottom = grid.Bottom
	Center = grid.Center
)

// MinCellWidth is the smallest accepted cell width in logical pixels.
const MinCellWidth = grid.MinCellWidth

// CellState describes the layers drawn in one cell, as returned by
// Canvas.Probe.
type CellState = cell.Snapshot

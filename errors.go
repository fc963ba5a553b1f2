package maze

import (
	"errors"

	"github.com/gogpu/maze/grid"
)

// Sentinel errors for maze package.
var (
	// ErrInvalidGrid is returned by New for grids without rows or columns.
	ErrInvalidGrid = errors.New("maze: grid needs at least one row and one column")

	// ErrCellTooSmall is returned by New for cell widths below MinCellWidth.
	ErrCellTooSmall = grid.ErrCellTooSmall

	// ErrNotOpen is returned by output methods on a canvas that is not open.
	ErrNotOpen = errors.New("maze: canvas is not open")
)

package probe

import (
	"image/color"

	"github.com/gogpu/maze/grid"
	"github.com/gogpu/maze/internal/cell"
)

// Ledger is a retained record of every cell's layers, stored row-major.
// The zero Ledger has no cells.
type Ledger struct {
	rows, cols int
	cells      []cell.Snapshot
}

// NewLedger returns a ledger for a rows x cols grid with every cell blank
// in shade.
func NewLedger(rows, cols int, shade color.RGBA) *Ledger {
	l := &Ledger{
		rows:  rows,
		cols:  cols,
		cells: make([]cell.Snapshot, rows*cols),
	}
	l.Reset(shade)
	return l
}

// Reset marks every cell blank in shade.
func (l *Ledger) Reset(shade color.RGBA) {
	blank := cell.Blank(shade)
	for i := range l.cells {
		l.cells[i] = blank
	}
}

// Snapshot returns a copy of the record for c.
func (l *Ledger) Snapshot(c grid.Coord) (cell.Snapshot, bool) {
	if !c.In(l.rows, l.cols) {
		return cell.Snapshot{}, false
	}
	return l.cells[c.Index(l.cols)].Clone(), true
}

// Commit replaces the record for c. Out-of-range coordinates are ignored.
func (l *Ledger) Commit(c grid.Coord, s cell.Snapshot) {
	if !c.In(l.rows, l.cols) {
		return
	}
	l.cells[c.Index(l.cols)] = s.Clone()
}

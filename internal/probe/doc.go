// Package probe answers "what is drawn in this cell" for the compositor.
//
// Two sources are provided. [PixelProber] reads single pixels at the probe
// points of a grid.Geometry and classifies each one against the cell's
// shade; it keeps no state of its own. [Ledger] keeps an explicit snapshot
// per cell that the compositor updates after every mutation. It gives the
// same answers as the pixels except when a layer was painted in the shade
// color, which pixel probing cannot see.
package probe

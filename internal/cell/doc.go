// Package cell describes the visual layers of one maze cell and plans how
// a mutation is painted.
//
// A cell is made of up to ten layers stacked in a fixed order:
//
//	shade < wall < path < center
//
// The shade fills the whole cell box. Walls are thin bands along the four
// borders. Paths run from a border to the center square, crossing the wall
// band on the same side. The center marker sits on top of everything.
//
// Because the underlying surface has no scene graph, painting a lower layer
// destroys whatever was above it. [Plan] takes the current [Snapshot] of a
// cell and an [Op], and returns the new snapshot together with the ordered
// list of [Paint] fills that leave every untouched layer visible. Plan never
// touches pixels; the compositor package executes the fills.
package cell

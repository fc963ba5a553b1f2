package cell

import (
	"fmt"
	"image/color"
	"maps"
	"strings"

	"github.com/gogpu/maze/grid"
)

// Snapshot is the visual state of one cell.
//
// Paths holds one entry per visible path, keyed by side. An entry for
// grid.Center means a center marker is drawn, and always equals Center.
// When no marker is drawn Center equals Shade.
type Snapshot struct {
	Shade  color.RGBA
	Center color.RGBA
	Walls  grid.SideSet
	Paths  map[grid.Side]color.RGBA
}

// Blank returns the snapshot of an empty cell filled with shade.
func Blank(shade color.RGBA) Snapshot {
	return Snapshot{Shade: shade, Center: shade}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Paths = maps.Clone(s.Paths)
	return out
}

// Path returns the color of the path on side, if one is drawn.
func (s Snapshot) Path(side grid.Side) (color.RGBA, bool) {
	c, ok := s.Paths[side]
	return c, ok
}

// HasCenter reports whether a center marker is drawn.
func (s Snapshot) HasCenter() bool {
	_, ok := s.Paths[grid.Center]
	return ok
}

// Equal reports whether s and o describe the same layers.
// A nil and an empty Paths map are equal.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Shade == o.Shade &&
		s.Center == o.Center &&
		s.Walls == o.Walls &&
		maps.Equal(s.Paths, o.Paths)
}

func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "shade=%s walls=%s", hexColor(s.Shade), s.Walls)
	for _, side := range grid.Sides {
		if c, ok := s.Paths[side]; ok {
			fmt.Fprintf(&b, " %s=%s", side, hexColor(c))
		}
	}
	return b.String()
}

func (s *Snapshot) setPath(side grid.Side, c color.RGBA) {
	if s.Paths == nil {
		s.Paths = make(map[grid.Side]color.RGBA, 1)
	}
	s.Paths[side] = c
	if side == grid.Center {
		s.Center = c
	}
}

func (s *Snapshot) clearPath(side grid.Side) {
	delete(s.Paths, side)
	if side == grid.Center {
		s.Center = s.Shade
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

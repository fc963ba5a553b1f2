package compositor

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/maze/grid"
	"github.com/gogpu/maze/internal/cell"
	"github.com/gogpu/maze/internal/probe"
	"github.com/gogpu/maze/surface"
)

var (
	white  = color.RGBA{255, 255, 255, 255}
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	cyan   = color.RGBA{0, 255, 255, 255}
)

const (
	rows   = 3
	cols   = 3
	header = 24
)

type rig struct {
	surf  *surface.ImageSurface
	geom  *grid.Geometry
	pixel *probe.PixelProber
	comp  *Compositor
}

// newRig builds a 3x3 grid of cw-wide cells. With ledger set the
// compositor reads a Ledger, otherwise the pixels.
func newRig(t *testing.T, cw int, ledger bool) *rig {
	t.Helper()
	geom, err := grid.NewGeometry(cw, image.Pt(cw, header+cw))
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	surf := surface.NewImageSurface((cols+2)*cw, header+(rows+1)*cw+max(16, cw), 1)
	surf.Clear(white)
	t.Cleanup(func() { _ = surf.Close() })

	pixel := probe.NewPixelProber(surf, geom, rows, cols)
	var state StateSource = pixel
	if ledger {
		state = probe.NewLedger(rows, cols, white)
	}
	return &rig{
		surf:  surf,
		geom:  geom,
		pixel: pixel,
		comp:  New(surf, geom, state, cell.DefaultPalette()),
	}
}

func (r *rig) apply(t *testing.T, at grid.Coord, ops ...cell.Op) {
	t.Helper()
	for _, op := range ops {
		if err := r.comp.Apply(at, op); err != nil {
			t.Fatalf("Apply(%v, %v): %v", at, op, err)
		}
	}
}

func (r *rig) probe(t *testing.T, at grid.Coord) cell.Snapshot {
	t.Helper()
	s, ok := r.pixel.Snapshot(at)
	if !ok {
		t.Fatalf("pixel Snapshot(%v) failed", at)
	}
	return s
}

// forBothModes runs fn against a pixel-probed and a ledger-backed rig.
func forBothModes(t *testing.T, cw int, fn func(t *testing.T, r *rig)) {
	t.Helper()
	for _, mode := range []struct {
		name   string
		ledger bool
	}{
		{"pixel", false},
		{"ledger", true},
	} {
		t.Run(mode.name, func(t *testing.T) {
			fn(t, newRig(t, cw, mode.ledger))
		})
	}
}

func samePixels(a, b *image.RGBA) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestWallRoundTrip(t *testing.T) {
	for _, side := range grid.Borders {
		forBothModes(t, 20, func(t *testing.T, r *rig) {
			at := grid.Coord{Row: 1, Col: 1}
			r.apply(t, at, cell.DrawShade(green))
			before := r.surf.Snapshot()

			r.apply(t, at, cell.DrawWall(side), cell.EraseWall(side))

			if !samePixels(before, r.surf.Snapshot()) {
				t.Errorf("%v: pixels differ after draw/erase wall", side)
			}
			if got := r.probe(t, at); !got.Equal(cell.Blank(green)) {
				t.Errorf("%v: probed %v, want blank green", side, got)
			}
		})
	}
}

func TestEraseWallPatchesCorners(t *testing.T) {
	forBothModes(t, 20, func(t *testing.T, r *rig) {
		at := grid.Coord{Row: 0, Col: 2}
		r.apply(t, at, cell.DrawCell(white), cell.EraseWall(grid.Top))

		got := r.probe(t, at)
		want := grid.NewSideSet(grid.Left, grid.Right, grid.Bottom)
		if got.Walls != want {
			t.Errorf("Walls = %v, want %v", got.Walls, want)
		}

		// The corner pixels of the erased band belong to Left and Right.
		o := r.geom.Origin(at)
		pal := cell.DefaultPalette()
		if c := r.surf.PixelAt(o.X, o.Y); c != pal.ShadeWall {
			t.Errorf("top-left corner = %v, want %v", c, pal.ShadeWall)
		}
		if c := r.surf.PixelAt(o.X+19, o.Y); c != pal.LightWall {
			t.Errorf("top-right corner = %v, want %v", c, pal.LightWall)
		}
		if c := r.surf.PixelAt(o.X+10, o.Y); c != white {
			t.Errorf("top edge = %v, want white", c)
		}
	})
}

func TestReshadeKeepsLayerOrder(t *testing.T) {
	forBothModes(t, 20, func(t *testing.T, r *rig) {
		at := grid.Coord{Row: 2, Col: 0}
		r.apply(t, at,
			cell.DrawWall(grid.Top),
			cell.DrawPath(grid.Left, red),
			cell.DrawCenter(blue),
			cell.DrawShade(green),
		)

		got := r.probe(t, at)
		want := cell.Snapshot{
			Shade:  green,
			Center: blue,
			Walls:  grid.NewSideSet(grid.Top),
			Paths:  map[grid.Side]color.RGBA{grid.Left: red, grid.Center: blue},
		}
		if !got.Equal(want) {
			t.Errorf("probed %v, want %v", got, want)
		}
	})
}

func TestPathOverWall(t *testing.T) {
	forBothModes(t, 20, func(t *testing.T, r *rig) {
		at := grid.Coord{Row: 1, Col: 0}
		r.apply(t, at, cell.DrawPath(grid.Left, red), cell.DrawWall(grid.Left))

		// the path still crosses the wall band
		rect := r.geom.Rect(at, grid.RegionPath, grid.Left)
		if c := r.surf.PixelAt(rect.Min.X, rect.Min.Y); c != red {
			t.Errorf("path pixel on the wall band = %v, want red", c)
		}

		r.apply(t, at, cell.ErasePath(grid.Left))
		if c := r.surf.PixelAt(rect.Min.X, rect.Min.Y); c != cell.DefaultPalette().ShadeWall {
			t.Errorf("wall band after erasing path = %v, want wall color", c)
		}
		got := r.probe(t, at)
		if got.Walls != grid.NewSideSet(grid.Left) || len(got.Paths) != 0 {
			t.Errorf("probed %v, want left wall only", got)
		}
	})
}

// TestScenario replays the walkthrough on a 3x3 grid.
func TestScenario(t *testing.T) {
	forBothModes(t, 20, func(t *testing.T, r *rig) {
		for row := range rows {
			for col := range cols {
				r.apply(t, grid.Coord{Row: row, Col: col}, cell.DrawCell(white))
			}
		}
		a := grid.Coord{Row: 0, Col: 0}
		b := grid.Coord{Row: 0, Col: 1}
		r.apply(t, a, cell.EraseWall(grid.Right), cell.DrawPath(grid.Right, red))
		r.apply(t, b, cell.EraseWall(grid.Left), cell.DrawPath(grid.Left, red), cell.DrawCenter(blue))
		r.apply(t, b, cell.DrawShade(yellow))

		gotA := r.probe(t, a)
		if gotA.Walls != grid.NewSideSet(grid.Top, grid.Left, grid.Bottom) {
			t.Errorf("a walls = %v", gotA.Walls)
		}
		if c, ok := gotA.Path(grid.Right); !ok || c != red {
			t.Errorf("a right path = %v, %v", c, ok)
		}

		gotB := r.probe(t, b)
		want := cell.Snapshot{
			Shade:  yellow,
			Center: blue,
			Walls:  grid.NewSideSet(grid.Top, grid.Right, grid.Bottom),
			Paths:  map[grid.Side]color.RGBA{grid.Left: red, grid.Center: blue},
		}
		if !gotB.Equal(want) {
			t.Errorf("b = %v, want %v", gotB, want)
		}

		r.apply(t, b, cell.EraseCenter(), cell.ErasePath(grid.Left), cell.EraseShade())
		gotB = r.probe(t, b)
		if !gotB.Equal(cell.Snapshot{Shade: white, Center: white, Walls: want.Walls}) {
			t.Errorf("b after erase = %v", gotB)
		}
	})
}

// TestModesAgree applies the same random operations in both modes and
// checks that pixels and snapshots match step by step.
func TestModesAgree(t *testing.T) {
	shades := []color.RGBA{white, green, yellow}
	marks := []color.RGBA{red, blue, cyan}

	for _, cw := range []int{6, 11, 20} {
		pix := newRig(t, cw, false)
		led := newRig(t, cw, true)
		rng := rand.New(rand.NewPCG(uint64(cw), 7))

		for step := range 400 {
			at := grid.Coord{Row: rng.IntN(rows), Col: rng.IntN(cols)}
			side := grid.Sides[rng.IntN(len(grid.Sides))]
			var op cell.Op
			switch rng.IntN(9) {
			case 0:
				op = cell.DrawCell(shades[rng.IntN(len(shades))])
			case 1:
				op = cell.DrawShade(shades[rng.IntN(len(shades))])
			case 2:
				op = cell.EraseShade()
			case 3:
				op = cell.DrawWall(side)
			case 4:
				op = cell.EraseWall(side)
			case 5:
				op = cell.DrawPath(side, marks[rng.IntN(len(marks))])
			case 6:
				op = cell.ErasePath(side)
			case 7:
				op = cell.DrawCenter(marks[rng.IntN(len(marks))])
			default:
				op = cell.EraseCenter()
			}

			pix.apply(t, at, op)
			led.apply(t, at, op)

			if !samePixels(pix.surf.Snapshot(), led.surf.Snapshot()) {
				t.Fatalf("cw %d step %d: pixels differ after %v at %v", cw, step, op, at)
			}
			want, _ := led.comp.State().Snapshot(at)
			if got := pix.probe(t, at); !got.Equal(want) {
				t.Fatalf("cw %d step %d: after %v probed %v, ledger %v", cw, step, op, got, want)
			}
		}
	}
}

// A path in the shade color is lost by pixel probing but kept by the ledger.
func TestLedgerSurvivesColorCollision(t *testing.T) {
	r := newRig(t, 20, true)
	at := grid.Coord{Row: 1, Col: 1}
	r.apply(t, at, cell.DrawPath(grid.Top, green), cell.DrawShade(green), cell.DrawShade(white))

	rect := r.geom.Rect(at, grid.RegionPath, grid.Top)
	if c := r.surf.PixelAt(rect.Min.X+1, rect.Max.Y-1); c != green {
		t.Errorf("path pixel = %v, want green", c)
	}
}

func TestApplyFailures(t *testing.T) {
	forBothModes(t, 20, func(t *testing.T, r *rig) {
		before := r.surf.Snapshot()

		if err := r.comp.Apply(grid.Coord{Row: rows}, cell.DrawCell(red)); !errors.Is(err, ErrNoState) {
			t.Errorf("out of range err = %v, want ErrNoState", err)
		}
		if err := r.comp.Apply(grid.Coord{Col: cols}, cell.DrawCell(red)); !errors.Is(err, ErrNoState) {
			t.Errorf("out of range err = %v, want ErrNoState", err)
		}
		if err := r.comp.Apply(grid.Coord{}, cell.Op{Kind: cell.KindDrawWall, Side: grid.Side(7)}); !errors.Is(err, cell.ErrInvalidOp) {
			t.Errorf("bad side err = %v, want ErrInvalidOp", err)
		}
		if !samePixels(before, r.surf.Snapshot()) {
			t.Error("failed operations changed pixels")
		}

		_ = r.surf.Close()
		if err := r.comp.Apply(grid.Coord{}, cell.DrawCell(red)); !errors.Is(err, ErrNoState) {
			t.Errorf("closed surface err = %v, want ErrNoState", err)
		}
	})
}

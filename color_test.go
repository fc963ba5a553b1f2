package maze

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in     string
		want   color.RGBA
		wantOK bool
	}{
		{"#ff0000", Red, true},
		{"00FF00", Green, true},
		{"#fff", White, true},
		{"dc143c", CaptionColor, true},
		{"#12", Black, false},
		{"zzzzzz", Black, false},
		{"", Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Hex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", Red},
		{"LightGray", LightGray},
		{"light_gray", LightGray},
		{" orange ", Orange},
		{"#0000ff", Blue},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := ParseColor("chartreuse-ish"); ok {
		t.Error("unknown names should not parse")
	}
}

// Shading a cell in a standard gray must not hide its walls.
func TestWallColorsAvoidStandardGrays(t *testing.T) {
	pal := DefaultPalette()
	for _, c := range []color.RGBA{Gray, LightGray} {
		if c == pal.ShadeWall || c == pal.LightWall {
			t.Errorf("standard gray %v collides with a wall color", c)
		}
	}

	modes(t, func(t *testing.T, mode StateMode) {
		cv := openCanvas(t, 1, 2, 20, WithStateMode(mode))
		cv.DrawCellColor(0, 0, Gray)
		cv.DrawCellColor(0, 1, LightGray)
		for col := range 2 {
			s, _ := cv.SampleProbe(0, col)
			if s.Walls.Len() != 4 {
				t.Errorf("col %d: walls = %v, want all four", col, s.Walls)
			}
		}
	})
}

func TestOpaque(t *testing.T) {
	if got := opaque(color.Gray{Y: 7}); got != RGB(7, 7, 7) {
		t.Errorf("opaque(gray 7) = %v", got)
	}
	if got := opaque(color.RGBA{R: 255, A: 255}); got != Red {
		t.Errorf("opaque(red) = %v", got)
	}
}

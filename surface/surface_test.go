// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

// Compile-time interface check.
var _ Surface = (*ImageSurface)(nil)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want color.RGBA
	}{
		{"nil", nil, black},
		{"rgba", color.RGBA{1, 2, 3, 4}, color.RGBA{1, 2, 3, 4}},
		{"gray", color.Gray{Y: 200}, color.RGBA{200, 200, 200, 255}},
		{"nrgba opaque", color.NRGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 255}},
		{"white", color.White, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toRGBA(tt.in); got != tt.want {
				t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	s := NewImageSurface(3, 2, 2)
	s.Clear(color.White)
	s.SetColor(color.RGBA{0, 255, 0, 255})
	s.FillRect(1, 0, 1, 1)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("decoded size = %v, want 6x4", b)
	}
	r, g, b, _ := img.At(3, 1).RGBA()
	if r != 0 || g != 0xffff || b != 0 {
		t.Errorf("decoded pixel = (%d, %d, %d), want green", r, g, b)
	}
}

func TestSavePNG(t *testing.T) {
	s := NewImageSurface(2, 2, 1)
	s.Clear(color.White)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, s); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	_ = s.Close()
	if err := SavePNG(path, s); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("SavePNG after close err = %v, want ErrSurfaceClosed", err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("EncodePNG after close err = %v, want ErrSurfaceClosed", err)
	}
}

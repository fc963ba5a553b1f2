// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is an immediate-mode raster target.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in logical pixels.
	Width() int

	// Height returns the surface height in logical pixels.
	Height() int

	// Transform maps a logical point to the device pixel it starts at.
	Transform(x, y int) (int, int)

	// SetColor sets the color used by FillRect.
	SetColor(c color.Color)

	// FillRect overwrites the w x h rectangle at (x, y) with the current
	// color. Parts outside the surface are ignored.
	FillRect(x, y, w, h int)

	// PixelAt returns the exact color at the logical point (x, y).
	// Points outside the surface, or any point of a closed surface, read
	// as opaque black.
	PixelAt(x, y int) color.RGBA

	// DrawImage overwrites the surface with img, placing img's top-left
	// corner at the logical point at. img is in logical pixels.
	DrawImage(img image.Image, at image.Point)

	// Clear fills the entire surface with c.
	Clear(c color.Color)

	// Snapshot returns a copy of the device pixels, or nil once closed.
	Snapshot() *image.RGBA

	// IsOpen reports whether the surface can still be drawn on.
	IsOpen() bool

	// Close releases the pixel buffer. Close is idempotent.
	Close() error
}

// Opaque black, the color read from pixels that do not exist.
var black = color.RGBA{A: 255}

// toRGBA converts c to 8-bit RGBA. A nil color is black.
func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return black
	}
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	//nolint:gosec // G115: safe - r>>8 is always in [0, 255]
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ImageSurface is a CPU surface that renders into an *image.RGBA.
//
// Fills use draw.Src, so a pixel always holds exactly the last color written
// to it. This is what makes reading layers back from pixels possible.
//
// Example:
//
//	s := surface.NewImageSurface(100, 80, 2)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.SetColor(color.RGBA{0, 0, 255, 255})
//	s.FillRect(10, 10, 30, 2)
type ImageSurface struct {
	width  int
	height int
	scale  int
	img    *image.RGBA

	// fill is the current draw color
	fill color.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a surface of width x height logical pixels with
// scale x scale device pixels each. Non-positive arguments are raised to 1.
func NewImageSurface(width, height, scale int) *ImageSurface {
	width = max(1, width)
	height = max(1, height)
	scale = max(1, scale)

	return &ImageSurface{
		width:  width,
		height: height,
		scale:  scale,
		img:    image.NewRGBA(image.Rect(0, 0, width*scale, height*scale)),
		fill:   black,
	}
}

// Width returns the surface width in logical pixels.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height in logical pixels.
func (s *ImageSurface) Height() int {
	return s.height
}

// Scale returns the number of device pixels per logical pixel on each axis.
func (s *ImageSurface) Scale() int {
	return s.scale
}

// Transform maps a logical point to its top-left device pixel.
func (s *ImageSurface) Transform(x, y int) (int, int) {
	origin := s.deviceOrigin()
	return origin.X + x*s.scale, origin.Y + y*s.scale
}

// SetColor sets the FillRect color.
func (s *ImageSurface) SetColor(c color.Color) {
	s.fill = toRGBA(c)
}

// Color returns the current FillRect color.
func (s *ImageSurface) Color() color.RGBA {
	return s.fill
}

// FillRect overwrites a logical rectangle with the current color.
func (s *ImageSurface) FillRect(x, y, w, h int) {
	if s.closed || w <= 0 || h <= 0 {
		return
	}
	r := s.deviceRect(image.Rect(x, y, x+w, y+h))
	draw.Draw(s.img, r, &image.Uniform{C: s.fill}, image.Point{}, draw.Src)
}

// PixelAt returns the color stored at a logical point.
func (s *ImageSurface) PixelAt(x, y int) color.RGBA {
	if s.closed || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return black
	}
	dx, dy := s.Transform(x, y)
	return s.img.RGBAAt(dx, dy)
}

// DrawImage copies img onto the surface at a logical position, scaling it
// with nearest-neighbor sampling when the surface scale is above 1.
func (s *ImageSurface) DrawImage(img image.Image, at image.Point) {
	if s.closed || img == nil {
		return
	}
	src := img.Bounds()
	dst := s.deviceRect(image.Rectangle{Min: at, Max: at.Add(src.Size())})
	if dst.Empty() {
		return
	}
	if s.scale == 1 {
		draw.Draw(s.img, dst, img, src.Min.Add(dst.Min.Sub(s.deviceOrigin()).Sub(at)), draw.Src)
		return
	}
	full := image.Rectangle{Min: at, Max: at.Add(src.Size())}
	fullDst := image.Rect(full.Min.X*s.scale, full.Min.Y*s.scale, full.Max.X*s.scale, full.Max.Y*s.scale).
		Add(s.deviceOrigin())
	xdraw.NearestNeighbor.Scale(s.img, fullDst, img, src, xdraw.Src, nil)
}

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: toRGBA(c)}, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the current device pixels.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.img.Bounds().Dx(), s.img.Bounds().Dy()))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// IsOpen reports whether Close has not been called yet.
func (s *ImageSurface) IsOpen() bool {
	return !s.closed
}

// Close releases the pixel buffer.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) deviceOrigin() image.Point {
	if s.img == nil {
		return image.Point{}
	}
	return s.img.Bounds().Min
}

// deviceRect scales a logical rectangle and clips it to the buffer.
func (s *ImageSurface) deviceRect(r image.Rectangle) image.Rectangle {
	d := image.Rect(r.Min.X*s.scale, r.Min.Y*s.scale, r.Max.X*s.scale, r.Max.Y*s.scale)
	return d.Add(s.deviceOrigin()).Intersect(s.img.Bounds())
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster target that maze cells are painted on.
//
// A Surface is an immediate-mode pixel buffer: every fill is an
// unconditional overwrite with no blending, and the surface keeps no record
// of what was drawn. Callers that need to know what is on screen read it
// back with PixelAt.
//
// # Coordinates
//
// All methods take logical coordinates. A surface created with Scale n
// stores n x n device pixels per logical pixel; Transform maps a logical
// point to its device pixel. Snapshot returns device pixels.
//
// # Backends
//
// Backends are created through a priority registry, so drivers can plug in
// a different pixel store without touching the drawing code:
//
//	s, err := surface.NewSurface(surface.Options{Width: 480, Height: 404})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.SetColor(color.RGBA{255, 0, 0, 255})
//	s.FillRect(10, 10, 20, 4)
//	c := s.PixelAt(12, 11) // {255 0 0 255}
//
// The built-in "image" backend renders into an *image.RGBA.
package surface

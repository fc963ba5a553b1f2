// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"
)

// Options configures surface creation.
type Options struct {
	// Width is the surface width in logical pixels.
	Width int

	// Height is the surface height in logical pixels.
	Height int

	// Scale is the number of device pixels per logical pixel on each axis.
	// Default: 1
	Scale int

	// BackgroundColor is the initial fill.
	// Default: white
	BackgroundColor color.Color
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:           width,
		Height:          height,
		Scale:           1,
		BackgroundColor: color.White,
	}
}

// normalized fills zero fields with their defaults.
func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = color.White
	}
	return o
}

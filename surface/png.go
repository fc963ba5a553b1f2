// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the device pixels of s to w as PNG.
func EncodePNG(w io.Writer, s Surface) error {
	img := s.Snapshot()
	if img == nil {
		return ErrSurfaceClosed
	}
	return png.Encode(w, img)
}

// SavePNG writes the device pixels of s to a PNG file.
func SavePNG(path string, s Surface) error {
	img := s.Snapshot()
	if img == nil {
		return ErrSurfaceClosed
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	return f.Close()
}

package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Draw renders text to dst with its baseline origin at (x, y).
func Draw(dst draw.Image, text string, face *Face, x, y float64, col color.Color) {
	if text == "" || face == nil {
		return
	}
	text = norm.NFC.String(text)

	face.with(func(ff font.Face) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: ff,
			Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
		}
		d.DrawString(text)
	})
}

// Measure returns the advance width of text using the global shaper, and
// the line height of face.
func Measure(text string, face *Face) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return GetShaper().Advance(norm.NFC.String(text), face), face.Metrics().Height
}

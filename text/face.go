package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64

	// Height is the recommended distance between two baselines.
	Height float64
}

// Face is a FontSource at one size.
// A Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64

	mu     sync.Mutex
	face   font.Face
	closed bool
}

func newFace(src *FontSource, size float64) (*Face, error) {
	ff, err := opentype.NewFace(src.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at %gpt: %w", size, err)
	}
	return &Face{source: src, size: size, face: ff}, nil
}

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size in points.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return Metrics{}
	}
	m := f.face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
		Height:  fixedToFloat64(m.Height),
	}
}

// Advance returns the width of s from glyph advances and kerning pairs,
// without shaping.
func (f *Face) Advance(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0
	}
	return fixedToFloat64(font.MeasureString(f.face, s))
}

// with runs fn with the underlying face locked. fn is not called once the
// face is closed.
func (f *Face) with(fn func(font.Face)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		fn(f.face)
	}
}

func (f *Face) close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	_ = f.face.Close()
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

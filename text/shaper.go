package text

import "sync"

// Shaper measures how far a string advances the pen.
type Shaper interface {
	// Advance returns the width of text set in face, in pixels.
	Advance(text string, face *Face) float64
}

// BuiltinShaper measures with the face's own glyph advances and kerning.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(text string, face *Face) float64 {
	if text == "" || face == nil {
		return 0
	}
	return face.Advance(text)
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Measure and Truncate.
// Pass nil to reset to the default GoTextShaper.
//
//	text.SetShaper(text.BuiltinShaper{})
//	defer text.SetShaper(nil)
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/maze/internal/cache"
)

// maxFacesPerSource bounds the faces a FontSource keeps cached. Evicted
// faces stay usable by whoever holds them.
const maxFacesPerSource = 8

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string

	mu     sync.RWMutex
	closed bool
	faces  *cache.Cache[float64, *Face]
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:  append([]byte(nil), data...),
		font:  f,
		faces: cache.New[float64, *Face](maxFacesPerSource),
	}
	s.addr = s

	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		panic("text: embedded Go Regular font: " + err.Error())
	}
	return s
})

// DefaultSource returns the shared Go Regular font.
func DefaultSource() *FontSource {
	return defaultSource()
}

// Face returns a face of the given size in points, at 72 DPI so one point
// is one logical pixel. Faces are cached per size and shared.
func (s *FontSource) Face(size float64) (*Face, error) {
	s.copyCheck()
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrSourceClosed
	}
	return s.faces.GetOrCreate(size, func() (*Face, error) {
		return newFace(s, size)
	})
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases the faces still cached by s. Those faces stop drawing.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.faces.OnEvict(func(_ float64, face *Face) { face.close() })
	s.faces.Clear()
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

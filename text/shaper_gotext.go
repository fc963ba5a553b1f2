package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper measures text with HarfBuzz shaping from
// go-text/typesetting, so ligatures and kerning affect the advance.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates a lightweight font.Face per
// call. HarfbuzzShaper instances are pooled since they are not
// concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Shaper. It falls back to the face's own advances if
// the font cannot be loaded by go-text.
func (s *GoTextShaper) Advance(text string, face *Face) float64 {
	if text == "" || face == nil {
		return 0
	}

	f, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return face.Advance(text)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return fixedToFloat64(adv)
}

// getOrCreateFont returns the cached go-text font for source, parsing it on
// first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}
	parsed, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = parsed.Font
	return parsed.Font, nil
}

// RemoveSource drops the cached font parsed for source.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

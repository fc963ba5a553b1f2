package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for non-positive face sizes.
	ErrInvalidSize = errors.New("text: face size must be positive")

	// ErrSourceClosed is returned when creating a face from a closed source.
	ErrSourceClosed = errors.New("text: font source is closed")
)

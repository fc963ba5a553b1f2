// Package text measures and draws single-line labels.
//
// The pipeline has three parts:
//
//   - FontSource: a parsed TTF/OTF font, shared across the application
//   - Face: a FontSource at one size, used for drawing and metrics
//   - Shaper: measures the advance of a string for a Face
//
// Glyphs are rasterized with golang.org/x/image/font. Advances are measured
// with HarfBuzz shaping from github.com/go-text/typesetting by default, so
// kerning and ligatures are accounted for when a label is truncated.
//
// # Example usage
//
//	face, err := text.DefaultSource().Face(12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	label := text.Truncate("A rather long caption", face, 120)
//	text.Draw(img, label, face, 0, 14, color.Black)
//
// Strings are normalized to NFC before they are measured or drawn.
package text

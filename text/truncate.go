package text

import (
	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Truncate shortens text so that it fits in maxWidth pixels when set in
// face, replacing the removed tail with Ellipsis. The result is NFC
// normalized. Text that already fits is returned unchanged apart from
// normalization. If not even the ellipsis fits, the result is empty.
func Truncate(text string, face *Face, maxWidth float64) string {
	text = norm.NFC.String(text)
	if text == "" || face == nil {
		return text
	}

	if w, _ := Measure(text, face); w <= maxWidth {
		return text
	}
	shaper := GetShaper()
	if shaper.Advance(Ellipsis, face) > maxWidth {
		return ""
	}

	// Binary search for the longest prefix, cut between grapheme clusters
	// so multi-rune clusters stay whole.
	cuts := boundaries(text)
	lo, hi := 0, len(cuts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if shaper.Advance(text[:cuts[mid]]+Ellipsis, face) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return text[:cuts[lo]] + Ellipsis
}

// boundaries returns the byte offsets of the grapheme cluster starts in
// text, starting with 0.
func boundaries(text string) []int {
	// byte offset of every rune; invalid bytes count as one rune each,
	// as they do for the segmenter
	offsets := make([]int, 0, len(text))
	for i := range text {
		offsets = append(offsets, i)
	}

	var seg segmenter.Segmenter
	seg.InitWithString(text)
	cuts := []int{0}
	for iter := seg.GraphemeIterator(); iter.Next(); {
		if g := iter.Grapheme(); g.Offset > 0 {
			cuts = append(cuts, offsets[g.Offset])
		}
	}
	return cuts
}

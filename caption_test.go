package maze

import (
	"image"
	"strings"
	"testing"

	"github.com/gogpu/maze/text"
)

// captionBand returns the caption area in logical pixels.
func captionBand(cv *Canvas) image.Rectangle {
	return cv.geom.CaptionBand(cv.rows, cv.cols, cv.captionBar())
}

func countNonBackground(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != White {
				n++
			}
		}
	}
	return n
}

func TestEraseCaptionMatchesEmptyCaption(t *testing.T) {
	a := openCanvas(t, 3, 5, 20)
	b := openCanvas(t, 3, 5, 20)

	a.DrawCaption("first caption")
	a.DrawCaption("")
	b.DrawCaption("first caption")
	b.EraseCaption()

	if !samePixels(a.Image(), b.Image()) {
		t.Error(`DrawCaption("") and EraseCaption differ`)
	}

	fresh := openCanvas(t, 3, 5, 20)
	if !samePixels(a.Image(), fresh.Image()) {
		t.Error("erasing a caption should restore the cleared canvas")
	}
}

func TestDrawCaption(t *testing.T) {
	cv := openCanvas(t, 3, 5, 20)
	band := captionBand(cv)

	if !cv.DrawCaption("Maze") {
		t.Fatal("DrawCaption failed")
	}
	if cv.Caption() != "Maze" {
		t.Errorf("Caption() = %q", cv.Caption())
	}

	img := cv.Image()
	if countNonBackground(img, band) == 0 {
		t.Error("caption drew no pixels")
	}

	// nothing outside the band changes
	clean := openCanvas(t, 3, 5, 20).Image()
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if image.Pt(x, y).In(band) {
				continue
			}
			if img.RGBAAt(x, y) != clean.RGBAAt(x, y) {
				t.Fatalf("pixel (%d, %d) outside the caption band changed", x, y)
			}
		}
	}
}

func TestDrawCaptionTruncates(t *testing.T) {
	cv := openCanvas(t, 1, 2, 10)
	long := strings.Repeat("a very long caption ", 10)

	if !cv.DrawCaption(long) {
		t.Fatal("DrawCaption failed")
	}
	if cv.Caption() != long {
		t.Error("Caption() should return the untruncated text")
	}

	face, err := text.DefaultSource().Face(captionSize)
	if err != nil {
		t.Fatal(err)
	}
	band := captionBand(cv)
	label := text.Truncate(long, face, float64(band.Dx()))
	if !strings.HasSuffix(label, text.Ellipsis) {
		t.Errorf("label %q should be truncated", label)
	}
}

func TestCaptionFaceOption(t *testing.T) {
	face, err := text.DefaultSource().Face(9)
	if err != nil {
		t.Fatal(err)
	}
	small := openCanvas(t, 2, 8, 20, WithCaptionFace(face))
	large := openCanvas(t, 2, 8, 20)

	small.DrawCaption("MMMM")
	large.DrawCaption("MMMM")

	ns := countNonBackground(small.Image(), captionBand(small))
	nl := countNonBackground(large.Image(), captionBand(large))
	if ns == 0 || ns >= nl {
		t.Errorf("9pt caption covers %d pixels, 12pt covers %d", ns, nl)
	}
}

func TestCaptionFaceSurvivesFaceCacheChurn(t *testing.T) {
	source := text.DefaultSource()
	face, err := source.Face(14)
	if err != nil {
		t.Fatal(err)
	}
	cv := openCanvas(t, 2, 8, 20, WithCaptionFace(face))
	plain := openCanvas(t, 2, 8, 20)

	cv.DrawCaption("Maze")
	before := countNonBackground(cv.Image(), captionBand(cv))
	if before == 0 {
		t.Fatal("caption drew no pixels")
	}

	for size := 20; size < 40; size++ {
		if _, err := source.Face(float64(size)); err != nil {
			t.Fatalf("Face(%d): %v", size, err)
		}
	}

	cv.EraseCaption()
	if !cv.DrawCaption("Maze") {
		t.Fatal("DrawCaption failed")
	}
	if after := countNonBackground(cv.Image(), captionBand(cv)); after != before {
		t.Errorf("caption covers %d pixels after other sizes were loaded, want %d", after, before)
	}

	plain.DrawCaption("Maze")
	if countNonBackground(plain.Image(), captionBand(plain)) == 0 {
		t.Error("default caption face drew no pixels")
	}
}

func TestClearDropsCaption(t *testing.T) {
	cv := openCanvas(t, 2, 4, 20)
	cv.DrawCaption("gone soon")
	cv.Clear()

	if cv.Caption() != "" {
		t.Errorf("Caption() after Clear = %q", cv.Caption())
	}
	if n := countNonBackground(cv.Image(), captionBand(cv)); n != 0 {
		t.Errorf("%d caption pixels left after Clear", n)
	}
}

package maze

import (
	"image"
	"image/draw"

	"github.com/gogpu/maze/text"
)

// captionSize is the default caption font size in points.
const captionSize = 12

// DrawCaption replaces the caption below the grid with s, truncated with an
// ellipsis to the grid width. It returns false if the canvas is not open.
func (cv *Canvas) DrawCaption(s string) bool {
	if !cv.IsOpen() {
		Logger().Debug("maze: caption rejected", "reason", "not open")
		return false
	}

	band := cv.geom.CaptionBand(cv.rows, cv.cols, cv.captionBar())
	if band.Empty() {
		return true
	}
	img := image.NewRGBA(image.Rect(0, 0, band.Dx(), band.Dy()))
	draw.Draw(img, img.Bounds(), image.NewUniform(cv.opts.palette.Background), image.Point{}, draw.Src)

	if s != "" {
		if face := cv.captionFace(); face != nil {
			label := text.Truncate(s, face, float64(band.Dx()))
			m := face.Metrics()
			baseline := (float64(band.Dy()) + m.Ascent - m.Descent) / 2
			text.Draw(img, label, face, 0, baseline, cv.opts.palette.Caption)
		}
	}

	cv.surf.DrawImage(img, band.Min)
	cv.caption = s
	return true
}

// EraseCaption clears the caption. It is the same as DrawCaption("").
func (cv *Canvas) EraseCaption() bool {
	return cv.DrawCaption("")
}

// Caption returns the text last passed to DrawCaption.
func (cv *Canvas) Caption() string {
	return cv.caption
}

// captionFace returns the configured face or the default one.
// nil means no face could be loaded.
func (cv *Canvas) captionFace() *text.Face {
	if cv.opts.captionFace != nil {
		return cv.opts.captionFace
	}
	face, err := text.DefaultSource().Face(captionSize)
	if err != nil {
		Logger().Warn("maze: caption font unavailable", "err", err)
		return nil
	}
	return face
}

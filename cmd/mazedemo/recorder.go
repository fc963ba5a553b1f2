package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/maze"
)

// recorder saves numbered frames of a canvas. With no directory it only
// counts steps.
type recorder struct {
	cv    *maze.Canvas
	dir   string
	calls int
	saved int

	// err is the first save failure; later frames are skipped.
	err error
}

func newRecorder(cv *maze.Canvas, dir string) (*recorder, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("frames directory: %w", err)
		}
	}
	return &recorder{cv: cv, dir: dir}, nil
}

// step saves a frame.
func (r *recorder) step() {
	r.stepEvery(1)
}

// stepEvery saves a frame on every n-th call.
func (r *recorder) stepEvery(n int) {
	r.calls++
	if r.calls%max(1, n) == 0 {
		r.save()
	}
}

// pause marks the end of a scene section. It always saves a frame.
func (r *recorder) pause() {
	r.calls = 0
	r.save()
}

func (r *recorder) save() {
	if r.dir == "" || r.err != nil {
		return
	}
	path := filepath.Join(r.dir, fmt.Sprintf("frame-%04d.png", r.saved))
	if err := r.cv.SavePNG(path); err != nil {
		r.err = err
		return
	}
	r.saved++
}

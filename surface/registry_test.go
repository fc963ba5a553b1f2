// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"testing"
)

func imageFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Width, opts.Height, opts.Scale), nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, imageFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, imageFactory, nil)

	if _, ok := r.Get("temp"); !ok {
		t.Fatal("backend should exist before unregister")
	}
	r.Unregister("temp")
	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryList tests priority ordering.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, imageFactory, nil)
	r.Register("high", 100, imageFactory, nil)
	r.Register("mid", 50, imageFactory, nil)
	r.Register("alsomid", 50, imageFactory, nil)

	got := r.List()
	want := []string{"high", "alsomid", "mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestRegistryNewSurface tests fallback selection.
func TestRegistryNewSurface(t *testing.T) {
	r := NewRegistry()
	r.Register("unavailable", 100, imageFactory, func() bool { return false })
	r.Register("broken", 50, func(Options) (Surface, error) {
		return nil, errors.New("boom")
	}, nil)
	r.Register("working", 10, imageFactory, nil)

	s, err := r.NewSurface(Options{Width: 10, Height: 8})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()

	if s.Width() != 10 || s.Height() != 8 {
		t.Errorf("size = %dx%d, want 10x8", s.Width(), s.Height())
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()

	if _, err := r.NewSurface(Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry err = %v, want ErrNoBackendAvailable", err)
	}

	var notFound *BackendNotFoundError
	if _, err := r.NewSurfaceByName("missing", Options{Width: 1, Height: 1}); !errors.As(err, &notFound) {
		t.Errorf("missing backend err = %v, want BackendNotFoundError", err)
	}

	r.Register("off", 1, imageFactory, func() bool { return false })
	var unavailable *BackendUnavailableError
	if _, err := r.NewSurfaceByName("off", Options{Width: 1, Height: 1}); !errors.As(err, &unavailable) {
		t.Errorf("unavailable backend err = %v, want BackendUnavailableError", err)
	}

	r.Register("on", 1, imageFactory, nil)
	if _, err := r.NewSurfaceByName("on", Options{Width: 0, Height: 1}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width err = %v, want ErrInvalidSize", err)
	}
}

func TestGlobalImageBackend(t *testing.T) {
	s, err := NewSurfaceByName("image", Options{
		Width:           4,
		Height:          3,
		Scale:           2,
		BackgroundColor: color.RGBA{R: 10, G: 20, B: 30, A: 255},
	})
	if err != nil {
		t.Fatalf("NewSurfaceByName(image): %v", err)
	}
	defer s.Close()

	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got := s.PixelAt(3, 2); got != want {
		t.Errorf("PixelAt(3, 2) = %v, want %v", got, want)
	}
	if img := s.Snapshot(); img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("device size = %v, want 8x6", img.Bounds())
	}
}

func TestDefaultOptionsBackground(t *testing.T) {
	s, err := NewSurface(DefaultOptions(2, 2))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()

	if got := s.PixelAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v, want white", got)
	}
}

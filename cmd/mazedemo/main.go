// Command mazedemo replays the maze drawing walkthrough and the snake
// circuit generator, writing the result as PNG.
//
// With -frames, every step is also saved as a numbered PNG in that
// directory, so the drawing can be followed one operation at a time.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/maze"
)

type config struct {
	rows      int
	cols      int
	cellWidth int
	scale     int
	mode      string
	scene     string
	script    string
	color     string
	output    string
	frames    string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.rows, "rows", 12, "grid rows")
	flag.IntVar(&cfg.cols, "cols", 16, "grid columns")
	flag.IntVar(&cfg.cellWidth, "cell", 28, "cell width in pixels")
	flag.IntVar(&cfg.scale, "scale", 1, "device pixels per logical pixel")
	flag.StringVar(&cfg.mode, "mode", "ledger", "cell state source: ledger or pixel")
	flag.StringVar(&cfg.scene, "scene", "all", "scene to draw: walkthrough, snake, script or all")
	flag.StringVar(&cfg.script, "script", "", "operations file for the script scene")
	flag.StringVar(&cfg.color, "color", "red", "snake path color, a name or #rrggbb")
	flag.StringVar(&cfg.output, "output", "maze.png", "output file")
	flag.StringVar(&cfg.frames, "frames", "", "directory for per-step frames (disabled if empty)")
	verbose := flag.Bool("v", false, "log every canvas operation to stderr")
	flag.Parse()

	if *verbose {
		maze.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("mazedemo: %v", err)
	}
	log.Printf("Maze saved to %s\n", cfg.output)
}

func run(cfg config) error {
	mode, err := parseMode(cfg.mode)
	if err != nil {
		return err
	}
	scenes, err := selectScenes(cfg)
	if err != nil {
		return err
	}

	cv, err := maze.New(cfg.rows, cfg.cols, cfg.cellWidth,
		maze.WithScale(cfg.scale),
		maze.WithStateMode(mode),
	)
	if err != nil {
		return err
	}
	if !cv.Open() {
		return fmt.Errorf("cannot open a %dx%d canvas", cfg.rows, cfg.cols)
	}
	defer cv.Close()

	rec, err := newRecorder(cv, cfg.frames)
	if err != nil {
		return err
	}
	for _, draw := range scenes {
		if err := draw(cv, rec); err != nil {
			return err
		}
	}
	if err := rec.err; err != nil {
		return err
	}
	return cv.SavePNG(cfg.output)
}

func parseMode(s string) (maze.StateMode, error) {
	switch s {
	case "ledger":
		return maze.StateLedger, nil
	case "pixel":
		return maze.StatePixel, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want ledger or pixel)", s)
}

type scene func(cv *maze.Canvas, rec *recorder) error

func selectScenes(cfg config) ([]scene, error) {
	switch cfg.scene {
	case "walkthrough":
		return []scene{walkthrough}, nil
	case "snake", "all":
		col, ok := maze.ParseColor(cfg.color)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", cfg.color)
		}
		if cfg.scene == "snake" {
			return []scene{snake(col)}, nil
		}
		return []scene{walkthrough, snake(col)}, nil
	case "script":
		if cfg.script == "" {
			return nil, errors.New("the script scene needs -script")
		}
		return []scene{scriptFile(cfg.script)}, nil
	}
	return nil, fmt.Errorf("unknown scene %q (want walkthrough, snake, script or all)", cfg.scene)
}

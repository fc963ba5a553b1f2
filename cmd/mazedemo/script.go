package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/maze"
	"github.com/gogpu/maze/grid"
)

// scriptFile returns a scene replaying the operations in the file at path.
func scriptFile(path string) scene {
	return func(cv *maze.Canvas, rec *recorder) error {
		f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		defer f.Close()
		return runScript(cv, rec, f)
	}
}

// runScript replays one canvas operation per line, saving a frame after
// each:
//
//	drawCell 0 0 [color]
//	drawShade 0 0 yellow
//	eraseShade 0 0
//	drawWall 0 0 right
//	eraseWall 0 0 right
//	drawPath 0 0 right #ff0000
//	erasePath 0 0 right
//	drawCenter 0 0 blue
//	eraseCenter 0 0
//	caption any text
//	eraseCaption
//	clear
//
// Blank lines and lines starting with # are skipped. An operation the
// canvas rejects stops the script.
func runScript(cv *maze.Canvas, rec *recorder, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ok, err := runLine(cv, line)
		if err != nil {
			return fmt.Errorf("script line %d: %w", n, err)
		}
		if !ok {
			return fmt.Errorf("script line %d: %q rejected", n, line)
		}
		rec.step()
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func runLine(cv *maze.Canvas, line string) (bool, error) {
	name, rest, _ := strings.Cut(line, " ")
	switch name {
	case "caption":
		return cv.DrawCaption(strings.TrimSpace(rest)), nil
	case "eraseCaption":
		return cv.EraseCaption(), nil
	case "clear":
		return cv.Clear(), nil
	}

	args := strings.Fields(rest)
	if len(args) < 2 {
		return false, fmt.Errorf("%s: want row and column", name)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return false, fmt.Errorf("%s: row: %w", name, err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return false, fmt.Errorf("%s: column: %w", name, err)
	}
	args = args[2:]

	switch name {
	case "drawCell":
		if len(args) == 0 {
			return cv.DrawCell(row, col), nil
		}
		c, err := colorArg(args, 0)
		if err != nil {
			return false, err
		}
		return cv.DrawCellColor(row, col, c), nil
	case "drawShade":
		c, err := colorArg(args, 0)
		if err != nil {
			return false, err
		}
		return cv.DrawShade(row, col, c), nil
	case "eraseShade":
		return cv.EraseShade(row, col), nil
	case "drawCenter":
		c, err := colorArg(args, 0)
		if err != nil {
			return false, err
		}
		return cv.DrawCenter(row, col, c), nil
	case "eraseCenter":
		return cv.EraseCenter(row, col), nil
	case "drawWall", "eraseWall", "drawPath", "erasePath":
		side, err := sideArg(args)
		if err != nil {
			return false, err
		}
		switch name {
		case "drawWall":
			return cv.DrawWall(row, col, side), nil
		case "eraseWall":
			return cv.EraseWall(row, col, side), nil
		case "erasePath":
			return cv.ErasePath(row, col, side), nil
		}
		c, err := colorArg(args, 1)
		if err != nil {
			return false, err
		}
		return cv.DrawPath(row, col, side, c), nil
	}
	return false, fmt.Errorf("unknown operation %q", name)
}

func sideArg(args []string) (maze.Side, error) {
	if len(args) == 0 {
		return 0, errors.New("missing side")
	}
	side, ok := grid.ParseSide(args[0])
	if !ok {
		return 0, fmt.Errorf("unknown side %q", args[0])
	}
	return side, nil
}

func colorArg(args []string, i int) (color.RGBA, error) {
	if len(args) <= i {
		return color.RGBA{}, errors.New("missing color")
	}
	c, ok := maze.ParseColor(args[i])
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", args[i])
	}
	return c, nil
}

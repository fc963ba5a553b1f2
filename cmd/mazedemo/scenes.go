package main

import (
	"errors"
	"image/color"

	"github.com/gogpu/maze"
)

var (
	tan  = maze.RGB(253, 217, 181)
	pale = maze.RGB(242, 242, 242)
	dark = maze.RGB(161, 0, 0)
)

// errSceneTooSmall is returned when the grid cannot hold a scene.
var errSceneTooSmall = errors.New("grid too small for scene")

// walkthrough exercises every layer operation on a handful of cells.
func walkthrough(cv *maze.Canvas, rec *recorder) error {
	if cv.Rows() < 6 || cv.Cols() < 6 {
		return errSceneTooSmall
	}
	rec.step()

	// granular operations
	cv.DrawCell(5, 5)
	rec.step()
	cv.DrawShade(5, 5, maze.Yellow)
	rec.step()
	cv.EraseWall(5, 5, maze.Top)
	rec.step()
	cv.DrawPath(5, 5, maze.Top, maze.Red)
	rec.step()
	cv.DrawCenter(5, 5, dark)
	rec.step()
	cv.DrawPath(5, 5, maze.Right, maze.Red)
	rec.pause()

	cv.DrawCell(1, 1)
	rec.step()
	cv.DrawCellColor(1, 1, maze.Yellow)
	rec.step()

	// a few cells
	cv.DrawCell(0, 0)
	cv.DrawCellColor(0, 1, maze.Green)
	cv.DrawCellColor(1, 0, maze.Cyan)
	cv.DrawCellColor(2, 0, pale)
	cv.DrawCellColor(1, 1, pale)
	cv.DrawCellColor(0, 2, pale)
	rec.step()

	// open the walls between the top left cells
	cv.EraseWall(0, 0, maze.Right)
	cv.EraseWall(0, 1, maze.Left)
	cv.EraseWall(0, 0, maze.Bottom)
	cv.EraseWall(1, 0, maze.Top)
	rec.step()

	// connect them
	cv.DrawCenter(0, 0, maze.Red)
	cv.DrawPath(0, 0, maze.Right, maze.Red)
	cv.DrawPath(0, 1, maze.Left, maze.Red)
	cv.DrawPath(0, 0, maze.Bottom, maze.Red)
	cv.DrawPath(1, 0, maze.Top, maze.Red)
	rec.step()

	// paths through closed walls around the middle cell
	cv.DrawCenter(1, 1, tan)
	cv.DrawPath(1, 1, maze.Left, tan)
	cv.DrawPath(1, 0, maze.Right, tan)
	cv.DrawPath(1, 1, maze.Top, tan)
	cv.DrawPath(0, 1, maze.Bottom, tan)
	rec.step()

	// walls go back up under the paths
	cv.DrawWall(0, 0, maze.Right)
	cv.DrawWall(0, 1, maze.Left)
	cv.DrawWall(0, 0, maze.Bottom)
	cv.DrawWall(1, 0, maze.Top)
	rec.step()

	// recolor the top left paths
	cv.DrawPath(0, 0, maze.Right, maze.Pink)
	cv.DrawPath(0, 1, maze.Left, maze.Pink)
	cv.DrawPath(0, 0, maze.Bottom, maze.Pink)
	cv.DrawPath(1, 0, maze.Top, maze.Pink)
	rec.step()

	cv.EraseCenter(0, 0)
	cv.EraseCenter(1, 1)
	rec.step()

	cv.ErasePath(0, 0, maze.Right)
	cv.ErasePath(0, 0, maze.Bottom)
	cv.ErasePath(0, 1, maze.Left)
	cv.ErasePath(1, 0, maze.Top)
	rec.step()

	// open the middle cell
	cv.EraseWall(1, 1, maze.Left)
	cv.EraseWall(1, 0, maze.Right)
	cv.EraseWall(1, 1, maze.Top)
	cv.EraseWall(0, 1, maze.Bottom)
	rec.step()

	cv.DrawCenter(1, 1, maze.Orange)
	rec.step()

	cv.DrawShade(0, 0, tan)
	cv.DrawShade(1, 1, maze.Yellow)
	rec.pause()

	cv.DrawCenter(0, 0, maze.Blue)
	cv.DrawPath(0, 0, maze.Right, maze.Blue)
	cv.DrawPath(0, 1, maze.Left, maze.Blue)
	cv.DrawWall(0, 0, maze.Right)
	cv.DrawWall(0, 1, maze.Left)
	rec.step()

	cv.DrawShade(0, 0, maze.Cyan)
	rec.step()

	cv.DrawCaption("This is a longer line of text, going in the caption area!")
	rec.step()
	cv.EraseCaption()
	rec.pause()
	return nil
}

// snake walls every cell, then carves and draws a single path in col that
// winds down each column and up the next.
func snake(col color.RGBA) scene {
	return func(cv *maze.Canvas, rec *recorder) error {
		return drawSnake(cv, rec, col)
	}
}

func drawSnake(cv *maze.Canvas, rec *recorder, col color.RGBA) error {
	rows, cols := cv.Rows(), cv.Cols()
	if rows < 2 {
		return errSceneTooSmall
	}

	for r := range rows {
		for c := range cols {
			rec.stepEvery(10)
			cv.DrawCellColor(r, c, maze.White)
		}
	}
	rec.pause()

	for r := range rows {
		for c := range cols {
			for _, side := range snakeSides(r, c, rows) {
				cv.EraseWall(r, c, side)
			}
		}
	}
	rec.pause()

	for r := range rows {
		for c := range cols {
			rec.step()
			in, out := snakeEnds(r, c, rows)
			cv.DrawPath(r, c, in, col)
			cv.DrawCenter(r, c, col)
			cv.DrawPath(r, c, out, col)
		}
	}
	rec.pause()
	return nil
}

// snakeSides returns the walls carved out of cell (r, c) of the circuit.
// Columns are joined alternately along the top and the bottom row.
func snakeSides(r, c, rows int) []maze.Side {
	var sides []maze.Side
	if r != 0 {
		sides = append(sides, maze.Top)
	}
	if r != rows-1 {
		sides = append(sides, maze.Bottom)
	}
	if r == 0 {
		if c%2 == 0 {
			sides = append(sides, maze.Left)
		} else {
			sides = append(sides, maze.Right)
		}
	}
	if r == rows-1 {
		if c%2 == 1 {
			sides = append(sides, maze.Left)
		} else {
			sides = append(sides, maze.Right)
		}
	}
	return sides
}

// snakeEnds returns the two sides the circuit path uses in cell (r, c).
func snakeEnds(r, c, rows int) (in, out maze.Side) {
	in = maze.Top
	if r == 0 {
		in = maze.Right
		if c%2 == 0 {
			in = maze.Left
		}
	}
	out = maze.Bottom
	if r == rows-1 {
		out = maze.Left
		if c%2 == 0 {
			out = maze.Right
		}
	}
	return in, out
}

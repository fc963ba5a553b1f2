// Package maze draws mazes on an immediate-mode raster surface.
//
// A maze is a grid of square cells. Each cell has layers that can be drawn
// and erased independently, stacked from bottom to top:
//
//	shade < walls < paths < center marker
//
// The surface only knows how to overwrite rectangles of pixels, so a
// Canvas works out, before every change, which layers are present and
// repaints the ones the change would otherwise destroy. By default the
// layers are tracked in a per-cell ledger; with StatePixel they are read
// back from single probe pixels instead.
//
// # Quick Start
//
//	cv, err := maze.New(3, 3, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cv.Open()
//	defer cv.Close()
//
//	for r := range 3 {
//	    for c := range 3 {
//	        cv.DrawCell(r, c)
//	    }
//	}
//	cv.EraseWall(0, 0, maze.Right)
//	cv.EraseWall(0, 1, maze.Left)
//	cv.DrawPath(0, 0, maze.Right, maze.Red)
//	cv.DrawPath(0, 1, maze.Left, maze.Red)
//	cv.DrawCenter(0, 1, maze.Blue)
//	cv.DrawCaption("two cells joined")
//	cv.SavePNG("maze.png")
//
// # Layout
//
// Coordinates are logical pixels; WithScale multiplies them into device
// pixels. Cell (0, 0) starts one cell width from the left edge, below a
// header bar. The grid is framed by a two-tone border and followed by a
// caption area at least 16 pixels tall.
//
// # Logging
//
// maze is silent by default. See SetLogger.
package maze

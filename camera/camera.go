// Package camera maps grid cells onto the screen.
package camera

import "github.com/pthm-cable/snake/components"

// Camera places a square board of Grid x Grid cells on the screen.
// The board sits below a HUD band and is centered horizontally.
type Camera struct {
	// Screen dimensions
	ScreenW, ScreenH float32

	// Height reserved above the board for the score line
	HUDHeight float32

	// Cells per side
	Grid int

	// Board origin and extent in screen pixels
	X, Y     float32
	Side     float32
	CellSize float32
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// New creates a camera for the given screen and grid.
func New(screenW, screenH float32, grid int, hudHeight float32) *Camera {
	c := &Camera{
		HUDHeight: hudHeight,
		Grid:      grid,
	}
	c.layout(screenW, screenH)
	return c
}

// layout fits the largest square board into the area under the HUD.
func (c *Camera) layout(screenW, screenH float32) {
	c.ScreenW = screenW
	c.ScreenH = screenH

	side := screenW
	if avail := screenH - c.HUDHeight; avail < side {
		side = avail
	}
	if side < 0 {
		side = 0
	}
	c.Side = side
	c.CellSize = side / float32(c.Grid)
	c.X = (screenW - side) / 2
	c.Y = c.HUDHeight
}

// Resize recomputes the board for new screen dimensions.
func (c *Camera) Resize(screenW, screenH float32) {
	if screenW == c.ScreenW && screenH == c.ScreenH {
		return
	}
	c.layout(screenW, screenH)
}

// Board returns the board rectangle.
func (c *Camera) Board() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Side, H: c.Side}
}

// CellToScreen returns the top-left corner of a cell.
func (c *Camera) CellToScreen(cell components.Cell) (sx, sy float32) {
	return c.X + float32(cell.X)*c.CellSize, c.Y + float32(cell.Y)*c.CellSize
}

// PointToScreen converts a position in cell units (fractional) to pixels.
func (c *Camera) PointToScreen(x, y float32) (sx, sy float32) {
	return c.X + x*c.CellSize, c.Y + y*c.CellSize
}

// CellRect returns the drawn square for a cell, shrunk by inset pixels on
// the right and bottom so neighbouring segments show a gap.
func (c *Camera) CellRect(cell components.Cell, inset float32) Rect {
	sx, sy := c.CellToScreen(cell)
	size := c.CellSize - inset
	if size < 1 {
		size = 1
	}
	return Rect{X: sx, Y: sy, W: size, H: size}
}

// Contains reports whether a screen point lies on the board.
func (c *Camera) Contains(sx, sy float32) bool {
	return sx >= c.X && sx < c.X+c.Side && sy >= c.Y && sy < c.Y+c.Side
}

// ScreenToCell returns the cell under a screen point.
func (c *Camera) ScreenToCell(sx, sy float32) (components.Cell, bool) {
	if !c.Contains(sx, sy) || c.CellSize <= 0 {
		return components.Cell{}, false
	}
	return components.Cell{
		X: int((sx - c.X) / c.CellSize),
		Y: int((sy - c.Y) / c.CellSize),
	}, true
}

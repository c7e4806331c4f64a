// Package components defines the grid types shared by the game systems and
// the ECS components used for effect particles.
package components

// Cell is a grid coordinate. Valid cells satisfy 0 <= X, Y < grid size.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by one step in direction d.
func (c Cell) Add(d Direction) Cell {
	v := d.Vector()
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// In reports whether the cell lies on a grid of the given size.
// There is no wrap-around: anything outside is off the board.
func (c Cell) In(grid int) bool {
	return c.X >= 0 && c.X < grid && c.Y >= 0 && c.Y < grid
}

// Center returns the cell center in cell units.
func (c Cell) Center() (x, y float32) {
	return float32(c.X) + 0.5, float32(c.Y) + 0.5
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the unit step for the direction. Screen coordinates grow
// downward, so Up is (0, -1).
func (d Direction) Vector() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

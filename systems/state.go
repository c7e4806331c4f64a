package systems

import "github.com/pthm-cable/snake/components"

// State is the complete game state. Values are treated as immutable by Step:
// a step returns a new State and never writes into the input's Snake slice.
type State struct {
	Grid      int               // Cells per side
	Snake     []components.Cell // Head first
	Food      components.Cell
	Direction components.Direction
	Score     int
	GameOver  bool
	Tick      int // Steps applied since the last reset
}

// InitialSnake returns the three-segment starting snake on row 5, heading right.
func InitialSnake() []components.Cell {
	return []components.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
}

// NewState returns the default state for a grid of the given size with a
// freshly drawn food cell.
func NewState(grid int, food FoodSource) State {
	return State{
		Grid:      grid,
		Snake:     InitialSnake(),
		Food:      food.Next(),
		Direction: components.Right,
	}
}

// Reset discards everything and returns the default state on the same grid.
func (s State) Reset(food FoodSource) State {
	return NewState(s.Grid, food)
}

// Head returns the first snake cell.
func (s State) Head() components.Cell {
	return s.Snake[0]
}

// Len returns the snake length.
func (s State) Len() int {
	return len(s.Snake)
}

// Occupies reports whether any snake segment sits on c.
func (s State) Occupies(c components.Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Steer sets the direction consumed by the next step. There is no guard
// against reversing into the neck; the next step treats it as a self collision.
func (s *State) Steer(d components.Direction) {
	s.Direction = d
}

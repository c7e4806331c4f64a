package systems

import (
	"golang.org/x/exp/rand"

	"github.com/pthm-cable/snake/components"
)

// FoodSource yields the next food cell.
type FoodSource interface {
	Next() components.Cell
}

// RandomFood draws food cells uniformly over the whole grid.
// TODO: skip cells under the snake. Food placed there stays hidden until
// the head reaches that cell again.
type RandomFood struct {
	grid int
	rng  *rand.Rand
}

// NewRandomFood creates a food source for a grid of the given size.
// The same seed produces the same sequence of cells.
func NewRandomFood(grid int, seed uint64) *RandomFood {
	return &RandomFood{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Next returns a uniformly random cell.
func (f *RandomFood) Next() components.Cell {
	return components.Cell{
		X: f.rng.Intn(f.grid),
		Y: f.rng.Intn(f.grid),
	}
}

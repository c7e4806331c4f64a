package systems

import (
	"log/slog"

	"github.com/pthm-cable/snake/components"
)

// Outcome describes what a single step did.
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota // Game already over, nothing changed
	OutcomeMoved                  // Head advanced, tail dropped
	OutcomeAte                    // Head advanced onto food, snake grew by one
	OutcomeHitWall                // Head would leave the grid
	OutcomeHitSelf                // Head would land on the body
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "wall"
	case OutcomeHitSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ended the game.
func (o Outcome) Fatal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// Step advances the game by one tick in direction dir.
//
// A collision sets GameOver and leaves every other field as it was. The body
// check covers every current segment including the tail, so turning back
// into the neck or chasing the tail is fatal. Eating keeps the tail in place
// and draws the next food cell from food, which may land on the snake.
func Step(s State, dir components.Direction, food FoodSource) (State, Outcome) {
	if s.GameOver {
		return s, OutcomeIgnored
	}

	head := s.Head().Add(dir)
	if !head.In(s.Grid) {
		s.GameOver = true
		return s, OutcomeHitWall
	}
	if s.Occupies(head) {
		s.GameOver = true
		return s, OutcomeHitSelf
	}

	ate := head == s.Food
	keep := len(s.Snake) - 1
	if ate {
		keep = len(s.Snake)
	}

	body := make([]components.Cell, 0, keep+1)
	body = append(body, head)
	body = append(body, s.Snake[:keep]...)

	s.Snake = body
	s.Direction = dir
	s.Tick++

	if !ate {
		return s, OutcomeMoved
	}
	s.Score++
	s.Food = food.Next()
	return s, OutcomeAte
}

// LogValue implements slog.LogValuer for structured logging.
func (s State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", s.Tick),
		slog.Int("score", s.Score),
		slog.Int("length", len(s.Snake)),
		slog.String("direction", s.Direction.String()),
		slog.Bool("game_over", s.GameOver),
	)
}

// Package telemetry records finished games, session summaries and frame timing.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventGesture EventType = iota
	EventFoodEaten
	EventGameOver
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventGesture:
		return "gesture"
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event is a single thing that happened during a session.
type Event struct {
	Type   EventType
	Tick   int
	Score  int
	Length int

	// Only set for EventGameOver
	Cause string
}

// NewGestureEvent records a direction read from a drag.
func NewGestureEvent(tick int) Event {
	return Event{Type: EventGesture, Tick: tick}
}

// NewFoodEvent records the snake eating.
func NewFoodEvent(tick, score, length int) Event {
	return Event{
		Type:   EventFoodEaten,
		Tick:   tick,
		Score:  score,
		Length: length,
	}
}

// NewGameOverEvent records a fatal collision.
func NewGameOverEvent(tick, score, length int, cause string) Event {
	return Event{
		Type:   EventGameOver,
		Tick:   tick,
		Score:  score,
		Length: length,
		Cause:  cause,
	}
}

// NewResetEvent records the player starting over.
func NewResetEvent(tick int) Event {
	return Event{Type: EventReset, Tick: tick}
}

package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestCollectorSessionRecord(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewCollector(fakeClock(start, 10*time.Second))
	id := c.SessionID()

	for i := 0; i < 4; i++ {
		_, done := c.Record(NewGestureEvent(i))
		require.False(t, done)
	}
	c.Record(NewFoodEvent(5, 1, 4))
	c.Record(NewFoodEvent(9, 2, 5))

	rec, done := c.Record(NewGameOverEvent(20, 2, 5, "wall"))
	require.True(t, done)

	assert.Equal(t, id.String(), rec.SessionID)
	assert.Equal(t, "2024-03-01T12:00:00Z", rec.Started)
	assert.Equal(t, 10.0, rec.DurationSec)
	assert.Equal(t, 20, rec.Ticks)
	assert.Equal(t, 2, rec.Score)
	assert.Equal(t, 5, rec.Length)
	assert.Equal(t, 2, rec.Foods)
	assert.Equal(t, 4, rec.Gestures)
	assert.Equal(t, "wall", rec.Cause)
	assert.Equal(t, 1, c.Sessions())
}

func TestCollectorIgnoresEventsAfterGameOver(t *testing.T) {
	c := NewCollector(nil)
	c.Record(NewGameOverEvent(3, 0, 3, "self"))

	// Taps on the overlay and a second game over must not count.
	_, done := c.Record(NewGestureEvent(3))
	assert.False(t, done)
	_, done = c.Record(NewGameOverEvent(3, 0, 3, "self"))
	assert.False(t, done)
	assert.Equal(t, 1, c.Sessions())
}

func TestCollectorResetStartsNewSession(t *testing.T) {
	c := NewCollector(nil)
	first := c.SessionID()
	c.Record(NewGestureEvent(1))
	c.Record(NewGameOverEvent(4, 0, 3, "self"))

	c.Record(NewResetEvent(4))
	assert.NotEqual(t, first, c.SessionID())

	rec, done := c.Record(NewGameOverEvent(2, 3, 6, "wall"))
	require.True(t, done)
	assert.Zero(t, rec.Gestures)

	sum := c.Summary()
	assert.Equal(t, 2, sum.Sessions)
	assert.Equal(t, 3, sum.Best)
	assert.InDelta(t, 1.5, sum.Mean, 1e-9)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "food_eaten", EventFoodEaten.String())
	assert.Equal(t, "game_over", EventGameOver.String())
	assert.Equal(t, "unknown", EventType(99).String())
}

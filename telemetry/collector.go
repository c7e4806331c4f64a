package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// Collector accumulates events for the current session and keeps the scores
// of every finished session for the running summary.
type Collector struct {
	now func() time.Time

	// Current session
	session  uuid.UUID
	started  time.Time
	gestures int
	foods    int
	finished bool

	scores []float64
}

// NewCollector creates a collector and begins the first session.
// now may be nil, in which case time.Now is used.
func NewCollector(now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	c := &Collector{now: now}
	c.Begin()
	return c
}

// Begin starts a new session with a fresh id.
func (c *Collector) Begin() {
	c.session = uuid.New()
	c.started = c.now()
	c.gestures = 0
	c.foods = 0
	c.finished = false
}

// SessionID returns the id of the current session.
func (c *Collector) SessionID() uuid.UUID {
	return c.session
}

// Record applies an event to the current session. A game over event closes
// the session and returns its record; the second return is false otherwise.
// Events arriving after the session closed are ignored until Begin.
func (c *Collector) Record(e Event) (SessionRecord, bool) {
	if c.finished && e.Type != EventReset {
		return SessionRecord{}, false
	}

	switch e.Type {
	case EventGesture:
		c.gestures++
	case EventFoodEaten:
		c.foods++
	case EventReset:
		c.Begin()
	case EventGameOver:
		return c.finish(e), true
	}
	return SessionRecord{}, false
}

func (c *Collector) finish(e Event) SessionRecord {
	end := c.now()
	c.finished = true
	c.scores = append(c.scores, float64(e.Score))

	return SessionRecord{
		SessionID:   c.session.String(),
		Started:     c.started.UTC().Format(time.RFC3339),
		DurationSec: end.Sub(c.started).Seconds(),
		Ticks:       e.Tick,
		Score:       e.Score,
		Length:      e.Length,
		Foods:       c.foods,
		Gestures:    c.gestures,
		Cause:       e.Cause,
	}
}

// Sessions returns the number of finished sessions.
func (c *Collector) Sessions() int {
	return len(c.scores)
}

// Summary computes score statistics over all finished sessions.
func (c *Collector) Summary() Summary {
	return Summarize(c.scores)
}

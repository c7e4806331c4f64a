package systems

import "time"

// Ticker calls a step function once per fixed period of frame time.
//
// It is fed from the frame loop with Advance, so steps run on the same
// goroutine as input handling and drawing. A single ticker lives for the
// whole mount; every fire reads whatever state is current at that moment.
type Ticker struct {
	period     time.Duration
	maxCatchUp int
	step       func()

	acc     time.Duration
	running bool
	fired   int64
}

// NewTicker creates a stopped ticker. maxCatchUp bounds the steps fired by a
// single Advance call (0 = unbounded); surplus whole periods are dropped.
func NewTicker(period time.Duration, maxCatchUp int, step func()) *Ticker {
	if period <= 0 {
		period = 200 * time.Millisecond
	}
	return &Ticker{
		period:     period,
		maxCatchUp: maxCatchUp,
		step:       step,
	}
}

// Start begins accumulating time.
func (t *Ticker) Start() {
	t.running = true
}

// Stop halts the ticker and discards accumulated time. No step fires after
// Stop returns, including from inside a step callback.
func (t *Ticker) Stop() {
	t.running = false
	t.acc = 0
}

// Restart realigns the phase so the next step is a full period away.
func (t *Ticker) Restart() {
	t.acc = 0
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	return t.running
}

// Period returns the step period.
func (t *Ticker) Period() time.Duration {
	return t.period
}

// Fired returns the total number of steps fired.
func (t *Ticker) Fired() int64 {
	return t.fired
}

// Advance adds elapsed frame time and fires the step for every whole period
// accumulated. Returns the number of steps fired.
func (t *Ticker) Advance(elapsed time.Duration) int {
	if !t.running || elapsed <= 0 {
		return 0
	}
	t.acc += elapsed

	n := 0
	for t.running && t.acc >= t.period {
		if t.maxCatchUp > 0 && n >= t.maxCatchUp {
			t.acc %= t.period
			break
		}
		t.acc -= t.period
		t.fired++
		n++
		t.step()
	}
	return n
}

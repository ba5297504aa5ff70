package core

import "time"

// DefaultMaxStep bounds a single simulation delta so a stalled host does not
// produce a large catch-up jump.
const DefaultMaxStep = 33 * time.Millisecond

// Clock turns host frame timestamps into bounded deltas.
type Clock struct {
	maxStep time.Duration
	last    time.Time
	started bool
}

// NewClock creates a clock clamping deltas to maxStep.
// A non-positive maxStep selects DefaultMaxStep.
func NewClock(maxStep time.Duration) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{maxStep: maxStep}
}

// Advance records now and returns the delta since the previous call.
// The first call returns zero. Timestamps going backwards yield zero.
func (c *Clock) Advance(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, c.maxStep)
}

// Reset forgets the last timestamp; the next Advance returns zero.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

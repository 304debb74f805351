package testutil

import "time"

// Clock is a deterministic time source. Each Now call returns the
// current instant and advances by a fixed step, so consecutive rows
// get strictly increasing timestamps.
type Clock struct {
	now  time.Time
	step time.Duration
}

// NewClock starts a clock at start, advancing step per Now call.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *Clock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

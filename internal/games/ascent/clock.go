package ascent

import "time"

// FrameClock measures wall time between ticks. Physics runs on a fixed
// step, so the measurement is informational; it feeds the debug overlay
// and logs. Anchor must be called whenever ticking resumes after a gap.
type FrameClock struct {
	now   func() time.Time
	last  time.Time
	delta time.Duration
}

// NewFrameClock creates a clock reading time from now, or time.Now if nil.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Anchor resets the reference point to the current time.
func (c *FrameClock) Anchor() {
	c.last = c.now()
	c.delta = 0
}

// Step returns the time elapsed since the previous Step or Anchor.
func (c *FrameClock) Step() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
	}
	c.delta = t.Sub(c.last)
	c.last = t
	return c.delta
}

// Delta returns the last measured step.
func (c *FrameClock) Delta() time.Duration {
	return c.delta
}

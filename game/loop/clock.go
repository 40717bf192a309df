package loop

import "time"

// Clock reports the seconds elapsed since the previous frame.
type Clock interface {
	Delta() float64
}

// WallClock measures real time between calls. The first call returns 0.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock creates a clock backed by time.Now.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Delta implements Clock.
func (c *WallClock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// FixedClock returns the same step every frame.
type FixedClock struct {
	Step float64
}

// Delta implements Clock.
func (c FixedClock) Delta() float64 {
	return c.Step
}

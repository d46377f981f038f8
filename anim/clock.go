package anim

import "time"

// Clock supplies the current time in seconds. Successive calls must never go backwards.
type Clock interface {
	Now() float64
}

// WallClock reports monotonic seconds since it was created.
type WallClock struct {
	origin time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.origin).Seconds()
}

// ManualClock is advanced explicitly, for fixed step hosts and tests.
type ManualClock struct {
	now float64
}

func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() float64 {
	return c.now
}

// Set moves the clock to t. Earlier times are ignored.
func (c *ManualClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.Set(c.now + dt)
}

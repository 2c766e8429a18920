package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// The engine only compares readings against each other, so any
// monotonic source works.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FrameClock is a virtual clock that only moves when stepped. It drives
// headless sessions at a fixed frame rate without sleeping.
type FrameClock struct {
	current time.Time
	frame   time.Duration
}

// NewFrameClock creates a FrameClock starting at start and advancing by
// frame on every Step
func NewFrameClock(start time.Time, frame time.Duration) *FrameClock {
	return &FrameClock{current: start, frame: frame}
}

// Now returns the virtual time
func (c *FrameClock) Now() time.Time {
	return c.current
}

// Step advances the virtual time by one frame
func (c *FrameClock) Step() {
	c.current = c.current.Add(c.frame)
}

package mocks

import (
	"time"

	"github.com/blockfall/stc/internal/dependencies/clock"
)

// Frame is one 60Hz display frame, the step most platforms tick at
const Frame = time.Second / 60

// MockClock is a mock implementation of Clock for testing. Time only
// moves when a test advances it.
type MockClock struct {
	CurrentTime time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// AdvanceMillis moves the clock forward by ms milliseconds. Timer
// deadlines are millisecond values, so most tests think in these.
func (c *MockClock) AdvanceMillis(ms int) {
	c.Advance(time.Duration(ms) * time.Millisecond)
}

// AdvanceFrames moves the clock forward by n frames
func (c *MockClock) AdvanceFrames(n int) {
	c.Advance(time.Duration(n) * Frame)
}

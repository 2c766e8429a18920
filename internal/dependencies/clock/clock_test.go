package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockOnlyMovesWhenStepped(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFrameClock(start, 16*time.Millisecond)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())

	c.Step()
	c.Step()
	assert.Equal(t, start.Add(32*time.Millisecond), c.Now())
}

func TestRealClockAdvances(t *testing.T) {
	c := New()
	first := c.Now()
	assert.False(t, c.Now().Before(first))
}

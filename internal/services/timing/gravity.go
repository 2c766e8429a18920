package timing

import "time"

// Gravity is the automatic fall timer
type Gravity struct {
	delay time.Duration
	last  time.Time
}

// NewGravity creates a Gravity timer with the given fall delay
func NewGravity(delay time.Duration) *Gravity {
	return &Gravity{delay: delay}
}

// Delay returns the current fall delay
func (g *Gravity) Delay() time.Duration {
	return g.delay
}

// SetDelay changes the fall delay without restarting the timer
func (g *Gravity) SetDelay(delay time.Duration) {
	g.delay = delay
}

// Reset restarts the timer at now
func (g *Gravity) Reset(now time.Time) {
	g.last = now
}

// Due returns true if a full fall delay has elapsed since the last reset
func (g *Gravity) Due(now time.Time) bool {
	return now.Sub(g.last) >= g.delay
}

// Fire reports whether gravity is due and, if so, restarts the timer
func (g *Gravity) Fire(now time.Time) bool {
	if !g.Due(now) {
		return false
	}
	g.last = now
	return true
}

// Shift moves the timer's start by d
func (g *Gravity) Shift(d time.Duration) {
	g.last = g.last.Add(d)
}

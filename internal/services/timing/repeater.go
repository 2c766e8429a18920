package timing

import "time"

// Repeater is a delayed autoshift timer for one held input. The press
// itself is handled by the key-down event; the repeater only produces the
// repeats that follow it: the first at press+delay, then one per interval
// until release.
type Repeater struct {
	delay    time.Duration
	interval time.Duration
	held     bool
	next     time.Time
}

// NewRepeater creates a released Repeater
func NewRepeater(delay, interval time.Duration) *Repeater {
	return &Repeater{
		delay:    delay,
		interval: interval,
	}
}

// Press starts the timer at now
func (r *Repeater) Press(now time.Time) {
	r.held = true
	r.next = now.Add(r.delay)
}

// Release stops the timer
func (r *Repeater) Release() {
	r.held = false
}

// Held returns true between Press and Release
func (r *Repeater) Held() bool {
	return r.held
}

// Fire returns true if a repeat is due at now. The deadline advances by
// one interval so cadence survives coarse ticks; when the caller fell more
// than an interval behind, the backlog is dropped instead of replayed.
func (r *Repeater) Fire(now time.Time) bool {
	if !r.held || now.Before(r.next) {
		return false
	}
	r.next = r.next.Add(r.interval)
	if !r.next.After(now) {
		r.next = now.Add(r.interval)
	}
	return true
}

// Shift moves the pending deadline by d
func (r *Repeater) Shift(d time.Duration) {
	r.next = r.next.Add(d)
}

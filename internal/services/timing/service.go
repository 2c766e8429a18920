package timing

import (
	"time"

	"github.com/blockfall/stc/internal/config"
	"github.com/blockfall/stc/internal/model"
)

type binding struct {
	event    model.Event
	repeater *Repeater
}

// Service owns every timer of a session: the autorepeat timers of the
// held inputs and the gravity timer. Deadlines are absolute times from
// the session clock, so the tick rate does not matter.
type Service struct {
	bindings []binding
	gravity  *Gravity
	paused   bool
	pausedAt time.Time
}

// New creates a timing Service. Rotation inputs only repeat when
// AutoRotation is enabled.
func New(cfg config.TimingConfig, fallDelay time.Duration) *Service {
	bindings := []binding{
		{model.EventMoveLeft, NewRepeater(cfg.DASDelay, cfg.DASInterval)},
		{model.EventMoveRight, NewRepeater(cfg.DASDelay, cfg.DASInterval)},
		{model.EventMoveDown, NewRepeater(cfg.DASDelay, cfg.DASInterval)},
	}
	if cfg.AutoRotation {
		bindings = append(bindings,
			binding{model.EventRotateCW, NewRepeater(cfg.RotationDelay, cfg.RotationInterval)},
			binding{model.EventRotateCCW, NewRepeater(cfg.RotationDelay, cfg.RotationInterval)},
		)
	}

	return &Service{
		bindings: bindings,
		gravity:  NewGravity(fallDelay),
	}
}

// Press starts the repeaters of every repeatable input in events. A
// press during pause counts from the moment the pause began, so the
// first repeat lands one delay after resuming.
func (s *Service) Press(events model.Event, now time.Time) {
	if s.paused {
		now = s.pausedAt
	}
	for _, b := range s.bindings {
		if events.Has(b.event) {
			b.repeater.Press(now)
		}
	}
}

// Release stops the repeaters of every input in events
func (s *Service) Release(events model.Event) {
	for _, b := range s.bindings {
		if events.Has(b.event) {
			b.repeater.Release()
		}
	}
}

// Repeats returns the inputs whose repeat is due at now
func (s *Service) Repeats(now time.Time) model.Event {
	if s.paused {
		return model.EventNone
	}
	fired := model.EventNone
	for _, b := range s.bindings {
		if b.repeater.Fire(now) {
			fired |= b.event
		}
	}
	return fired
}

// GravityDue reports whether an automatic fall step is due and restarts
// the gravity timer when it is
func (s *Service) GravityDue(now time.Time) bool {
	if s.paused {
		return false
	}
	return s.gravity.Fire(now)
}

// ResetGravity restarts the gravity timer, as on every spawn
func (s *Service) ResetGravity(now time.Time) {
	s.gravity.Reset(now)
}

// FallDelay returns the current gravity delay
func (s *Service) FallDelay() time.Duration {
	return s.gravity.Delay()
}

// SetFallDelay changes the gravity delay
func (s *Service) SetFallDelay(delay time.Duration) {
	s.gravity.SetDelay(delay)
}

// Paused returns true between Pause and Resume
func (s *Service) Paused() bool {
	return s.paused
}

// Pause freezes every timer at now
func (s *Service) Pause(now time.Time) {
	if s.paused {
		return
	}
	s.paused = true
	s.pausedAt = now
}

// Resume shifts every deadline by the time spent paused
func (s *Service) Resume(now time.Time) {
	if !s.paused {
		return
	}
	s.paused = false

	d := now.Sub(s.pausedAt)
	if d <= 0 {
		return
	}
	for _, b := range s.bindings {
		b.repeater.Shift(d)
	}
	s.gravity.Shift(d)
}

// Reset unpauses and restarts gravity at now with the given delay. Inputs
// still held are re-armed from now, since no new key-down arrives for them.
func (s *Service) Reset(now time.Time, fallDelay time.Duration) {
	for _, b := range s.bindings {
		if b.repeater.Held() {
			b.repeater.Press(now)
		}
	}
	s.paused = false
	s.gravity.SetDelay(fallDelay)
	s.gravity.Reset(now)
}

// Interface for dependency injection
type ServiceInterface interface {
	Press(events model.Event, now time.Time)
	Release(events model.Event)
	Repeats(now time.Time) model.Event
	GravityDue(now time.Time) bool
	ResetGravity(now time.Time)
	FallDelay() time.Duration
	SetFallDelay(delay time.Duration)
	Paused() bool
	Pause(now time.Time)
	Resume(now time.Time)
	Reset(now time.Time, fallDelay time.Duration)
}

var _ ServiceInterface = (*Service)(nil)

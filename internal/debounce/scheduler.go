package debounce

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Handle identifies a scheduled callback. Only the Scheduler that returned
// it knows how to cancel it.
type Handle any

// Scheduler runs a callback after a delay and can cancel it before it runs.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// ClockScheduler schedules callbacks on a clockwork.Clock.
type ClockScheduler struct {
	clock clockwork.Clock
}

// NewClockScheduler creates a scheduler on the given clock. A nil clock
// means the real wall clock.
func NewClockScheduler(clock clockwork.Clock) *ClockScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockScheduler{clock: clock}
}

// Schedule arms a timer that runs fn once delay has elapsed.
func (s *ClockScheduler) Schedule(delay time.Duration, fn func()) Handle {
	return s.clock.AfterFunc(delay, fn)
}

// Cancel stops a timer armed by Schedule. Unknown handles are ignored.
func (s *ClockScheduler) Cancel(h Handle) {
	if t, ok := h.(clockwork.Timer); ok {
		t.Stop()
	}
}

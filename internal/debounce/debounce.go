package debounce

import (
	"sync"
	"time"
)

// Func is a debounced wrapper around a function of one argument.
// Functions with several arguments are wrapped by bundling them in a struct.
//
// Func is safe for concurrent use. The wrapped function runs on whatever
// goroutine the scheduler fires on.
type Func[A any] struct {
	scheduler Scheduler
	wait      time.Duration
	fn        func(A)

	mu      sync.Mutex
	pending Handle
	seq     uint64
}

// New wraps fn so that calls to Call are debounced by wait.
//
// A negative wait is passed to the scheduler as is.
func New[A any](s Scheduler, wait time.Duration, fn func(A)) *Func[A] {
	return &Func[A]{
		scheduler: s,
		wait:      wait,
		fn:        fn,
	}
}

// Wrap is New for callers that only want the call shape.
func Wrap[A any](s Scheduler, wait time.Duration, fn func(A)) func(A) {
	return New(s, wait, fn).Call
}

// Call drops any pending invocation and schedules fn(arg) wait from now.
// It never invokes fn synchronously.
func (f *Func[A]) Call(arg A) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending != nil {
		f.scheduler.Cancel(f.pending)
	}

	f.seq++
	seq := f.seq
	f.pending = f.scheduler.Schedule(f.wait, func() {
		f.fire(seq, arg)
	})
}

// Pending reports whether an invocation is scheduled and has not fired yet.
func (f *Func[A]) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending != nil
}

// fire runs fn unless a later Call superseded this one. The sequence check
// covers timers that had already fired when Cancel was called.
func (f *Func[A]) fire(seq uint64, arg A) {
	f.mu.Lock()
	if seq != f.seq {
		f.mu.Unlock()
		return
	}
	f.pending = nil
	f.mu.Unlock()

	f.fn(arg)
}

// Package debounce collapses bursts of calls into a single trailing call.
//
// # Overview
//
// Two flavours are provided, both with the same contract: every call
// supersedes the previous one entirely, and the wrapped work runs once, a
// fixed wait after the last call, with that call's arguments.
//
//   - Func: a generic wrapper driven by a Scheduler. The default scheduler
//     is backed by a clockwork.Clock so tests can advance time by hand.
//   - Tag: a Bubble Tea debouncer for code that lives on the event loop.
//     Trigger returns a tea.Tick command and Settled tells the caller
//     whether a SettledMsg belongs to the most recent trigger.
//
// Neither flavour exposes a cancel operation. Calling again is the only way
// to suppress a pending call; tearing down timers when a program exits is
// the host's job.
//
// Example:
//
//	save := debounce.New(debounce.NewClockScheduler(clockwork.NewRealClock()),
//	    500*time.Millisecond, func(path string) {
//	        persist(path)
//	    })
//	save.Call("a.txt")
//	save.Call("b.txt") // only "b.txt" is persisted
package debounce

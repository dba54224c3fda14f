package debounce

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan int) int {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("debounced function was not called")
		return 0
	}
}

func assertNoCall(t *testing.T, ch <-chan int) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected call with %d", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func newRecorder(t *testing.T, wait time.Duration) (*clockwork.FakeClock, *Func[int], chan int) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	calls := make(chan int, 16)
	f := New(NewClockScheduler(clock), wait, func(v int) {
		calls <- v
	})
	return clock, f, calls
}

func TestFunc_NotCalledImmediately(t *testing.T) {
	_, f, calls := newRecorder(t, time.Second)

	f.Call(1)

	assertNoCall(t, calls)
	assert.True(t, f.Pending())
}

func TestFunc_CalledAfterWait(t *testing.T) {
	clock, f, calls := newRecorder(t, time.Second)

	f.Call(1)
	clock.Advance(time.Second)

	assert.Equal(t, 1, receive(t, calls))
	assertNoCall(t, calls)
	assert.False(t, f.Pending())
}

func TestFunc_CollapsesBurst(t *testing.T) {
	clock, f, calls := newRecorder(t, time.Second)

	for i := 1; i <= 5; i++ {
		f.Call(i)
		clock.Advance(100 * time.Millisecond)
	}
	clock.Advance(time.Second)

	assert.Equal(t, 5, receive(t, calls))
	assertNoCall(t, calls)
}

func TestFunc_WaitRestartsOnEachCall(t *testing.T) {
	clock, f, calls := newRecorder(t, time.Second)

	f.Call(1)
	clock.Advance(200 * time.Millisecond)
	f.Call(2)

	// 1199ms after the first call, 999ms after the second.
	clock.Advance(999 * time.Millisecond)
	assertNoCall(t, calls)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, receive(t, calls))
	assertNoCall(t, calls)
}

func TestFunc_SeparateBurstsFireSeparately(t *testing.T) {
	clock, f, calls := newRecorder(t, 500*time.Millisecond)

	f.Call(1)
	clock.Advance(500 * time.Millisecond)
	require.Equal(t, 1, receive(t, calls))

	f.Call(2)
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 2, receive(t, calls))
}

type receiver struct {
	value int
	seen  chan int
}

func (r *receiver) report(int) {
	r.seen <- r.value
}

func TestFunc_PreservesReceiver(t *testing.T) {
	clock := clockwork.NewFakeClock()
	r := &receiver{value: 42, seen: make(chan int, 1)}
	call := Wrap(NewClockScheduler(clock), time.Second, r.report)

	call(0)
	clock.Advance(time.Second)

	assert.Equal(t, 42, receive(t, r.seen))
}

func TestFunc_StructArguments(t *testing.T) {
	type args struct {
		x, y int
	}
	clock := clockwork.NewFakeClock()
	sums := make(chan int, 1)
	call := Wrap(NewClockScheduler(clock), time.Second, func(a args) {
		sums <- a.x + a.y
	})

	call(args{1, 2})
	call(args{3, 4})
	clock.Advance(time.Second)

	assert.Equal(t, 7, receive(t, sums))
}

type fakeScheduler struct {
	scheduled []func()
	cancelled int
}

func (s *fakeScheduler) Schedule(_ time.Duration, fn func()) Handle {
	s.scheduled = append(s.scheduled, fn)
	return len(s.scheduled) - 1
}

func (s *fakeScheduler) Cancel(Handle) {
	s.cancelled++
}

func TestFunc_IgnoresTimerThatFiredAfterSupersede(t *testing.T) {
	s := &fakeScheduler{}
	var got []int
	f := New(s, time.Second, func(v int) {
		got = append(got, v)
	})

	f.Call(1)
	f.Call(2)
	require.Len(t, s.scheduled, 2)
	assert.Equal(t, 1, s.cancelled)

	// The first timer slipped through its cancellation.
	s.scheduled[0]()
	assert.Empty(t, got)

	s.scheduled[1]()
	assert.Equal(t, []int{2}, got)
}

func TestFunc_NegativeWaitFiresWithoutAdvance(t *testing.T) {
	clock := clockwork.NewFakeClock()
	release := make(chan struct{})
	calls := make(chan int, 1)
	f := New(NewClockScheduler(clock), -time.Second, func(v int) {
		<-release
		calls <- v
	})

	// fn blocks until release, so a synchronous call would never return here.
	f.Call(3)
	close(release)

	assert.Equal(t, 3, receive(t, calls))
}

func TestClockScheduler_CancelUnknownHandle(t *testing.T) {
	s := NewClockScheduler(nil)
	assert.NotPanics(t, func() {
		s.Cancel("not a timer")
		s.Cancel(nil)
	})
}

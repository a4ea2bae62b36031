package clock

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Fake is a manually advanced Scheduler. Callbacks run on the goroutine
// calling Advance, ordered by due time and then by scheduling order.
type Fake struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	due time.Duration
	seq int
	fn  func()
}

// NewFake returns a Fake at time zero.
func NewFake() *Fake {
	return &Fake{}
}

// Now returns the time elapsed since the Fake was created.
func (f *Fake) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Pending reports how many callbacks are scheduled and not yet run.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Cancel {
	f.mu.Lock()
	defer f.mu.Unlock()

	if d < 0 {
		d = 0
	}
	f.seq++
	t := &fakeTimer{due: f.now + d, seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.timers = slices.DeleteFunc(f.timers, func(o *fakeTimer) bool { return o == t })
	}
}

// Advance moves time forward by d, running every callback that falls due.
// Callbacks scheduled while advancing run too if they fall within d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		t := f.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	f.mu.Lock()
	f.now = target
	f.mu.Unlock()
}

func (f *Fake) popDue(target time.Duration) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.timers) == 0 {
		return nil
	}
	next := slices.MinFunc(f.timers, func(a, b *fakeTimer) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	if next.due > target {
		return nil
	}
	f.timers = slices.DeleteFunc(f.timers, func(o *fakeTimer) bool { return o == next })
	f.now = next.due
	return next
}

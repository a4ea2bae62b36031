// Package clock provides the schedulers that drive a quiz session: a manual
// clock for tests and a real-time serial loop.
package clock

import "time"

// Cancel stops a scheduled callback. It is safe to call more than once and
// after the callback has run.
type Cancel func()

// Scheduler runs callbacks after a delay on the caller's serial queue.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}

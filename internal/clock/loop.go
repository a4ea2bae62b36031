package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a real-time Scheduler that runs every callback on the goroutine
// calling Run, one at a time, in the order they were posted.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	done    chan struct{}
	stopped sync.Once
}

// NewLoop returns a Loop ready to accept work. Nothing runs until Run.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Every posts fn once per interval until cancelled or the loop stops.
func (l *Loop) Every(interval time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	quit := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-l.done:
				return
			case <-ticker.C:
				l.Post(func() {
					if !cancelled.Load() {
						fn()
					}
				})
			}
		}
	}()

	return func() {
		cancelled.Store(true)
		once.Do(func() { close(quit) })
	}
}

// Run executes posted work until ctx is done or Stop is called. It returns
// ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}

		for {
			select {
			case <-l.done:
				return nil
			default:
			}
			fn := l.pop()
			if fn == nil {
				break
			}
			fn()
		}
	}
}

// Stop ends Run after the current callback. Pending work is dropped.
func (l *Loop) Stop() {
	l.stopped.Do(func() { close(l.done) })
}

func (l *Loop) pop() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn
}

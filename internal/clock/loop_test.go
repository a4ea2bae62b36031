package clock

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoop_RunsPostedWorkInOrder(t *testing.T) {
	l := NewLoop()
	var got []int

	for i := 1; i <= 100; i++ {
		l.Post(func() { got = append(got, i) })
	}
	l.Post(l.Stop)

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("ran %d tasks, want 100", len(got))
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("task %d ran as %d", i+1, v)
		}
	}
}

func TestLoop_AfterFuncRunsOnLoop(t *testing.T) {
	l := NewLoop()
	var ran atomic.Bool

	l.AfterFunc(5*time.Millisecond, func() {
		ran.Store(true)
		l.Stop()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !ran.Load() {
		t.Error("AfterFunc callback did not run")
	}
}

func TestLoop_CancelledAfterFuncIsSkipped(t *testing.T) {
	l := NewLoop()
	var ran atomic.Bool

	cancel := l.AfterFunc(5*time.Millisecond, func() { ran.Store(true) })
	cancel()
	l.AfterFunc(30*time.Millisecond, l.Stop)

	ctx, done := context.WithTimeout(context.Background(), 2*time.Second)
	defer done()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if ran.Load() {
		t.Error("cancelled callback ran")
	}
}

func TestLoop_EveryUntilCancelled(t *testing.T) {
	l := NewLoop()
	count := 0

	var stop Cancel
	stop = l.Every(2*time.Millisecond, func() {
		count++
		if count == 3 {
			stop()
			l.AfterFunc(20*time.Millisecond, l.Stop)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if count != 3 {
		t.Errorf("ticked %d times, want 3", count)
	}
}

func TestLoop_RunStopsOnContextCancel(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
	if l.Post(func() {}) {
		t.Error("Post succeeded after the loop stopped")
	}
}

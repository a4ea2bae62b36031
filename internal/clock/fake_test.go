package clock

import (
	"testing"
	"time"
)

func TestFake_RunsDueCallbacksInOrder(t *testing.T) {
	f := NewFake()
	var got []string

	f.AfterFunc(3*time.Second, func() { got = append(got, "c") })
	f.AfterFunc(1*time.Second, func() { got = append(got, "a") })
	f.AfterFunc(1*time.Second, func() { got = append(got, "b") })
	f.AfterFunc(5*time.Second, func() { got = append(got, "late") })

	f.Advance(3 * time.Second)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ran %v, want %v", got, want)
		}
	}
	if f.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", f.Pending())
	}
	if f.Now() != 3*time.Second {
		t.Errorf("Now() = %v, want 3s", f.Now())
	}
}

func TestFake_CancelSkipsCallback(t *testing.T) {
	f := NewFake()
	ran := false
	cancel := f.AfterFunc(time.Second, func() { ran = true })

	cancel()
	cancel()
	f.Advance(2 * time.Second)

	if ran {
		t.Error("cancelled callback ran")
	}
	if f.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", f.Pending())
	}
}

func TestFake_NestedScheduling(t *testing.T) {
	f := NewFake()
	var at []time.Duration

	f.AfterFunc(time.Second, func() {
		at = append(at, f.Now())
		f.AfterFunc(time.Second, func() { at = append(at, f.Now()) })
		f.AfterFunc(5*time.Second, func() { at = append(at, f.Now()) })
	})

	f.Advance(3 * time.Second)

	if len(at) != 2 || at[0] != time.Second || at[1] != 2*time.Second {
		t.Errorf("callbacks ran at %v, want [1s 2s]", at)
	}
	if f.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", f.Pending())
	}
}

func TestFake_ZeroDelayRunsOnNextAdvance(t *testing.T) {
	f := NewFake()
	ran := false
	f.AfterFunc(0, func() { ran = true })
	if ran {
		t.Fatal("callback ran before Advance")
	}
	f.Advance(0)
	if !ran {
		t.Error("zero-delay callback did not run")
	}
}

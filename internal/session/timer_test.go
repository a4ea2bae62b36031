package session

import "testing"

func TestCountdown_ExpiresOnce(t *testing.T) {
	var ticks []int
	expired := 0
	c := NewCountdown(func(r int) { ticks = append(ticks, r) }, func() { expired++ })

	c.Start(3)
	for i := 0; i < 5; i++ {
		c.Tick()
	}

	if expired != 1 {
		t.Errorf("onExpire called %d times, want 1", expired)
	}
	if len(ticks) != 3 || ticks[2] != 0 {
		t.Errorf("ticks = %v, want [2 1 0]", ticks)
	}
	if c.Remaining() != 0 || !c.Expired() || c.Running() {
		t.Errorf("Remaining=%d Expired=%v Running=%v", c.Remaining(), c.Expired(), c.Running())
	}
}

func TestCountdown_CancelIsIdempotent(t *testing.T) {
	expired := false
	c := NewCountdown(nil, func() { expired = true })

	c.Start(1)
	c.Cancel()
	c.Cancel()
	c.Tick()

	if expired {
		t.Error("cancelled countdown expired")
	}
	if c.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", c.Remaining())
	}

	c.Start(1)
	c.Tick()
	c.Cancel()
	if !expired {
		t.Error("restarted countdown did not expire")
	}
}

func TestCountdown_ClampsAtZero(t *testing.T) {
	c := NewCountdown(nil, nil)
	c.Start(0)
	c.Tick()
	if c.Remaining() != 0 || !c.Expired() {
		t.Errorf("Remaining=%d Expired=%v", c.Remaining(), c.Expired())
	}
}

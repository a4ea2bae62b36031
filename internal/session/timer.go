package session

// Countdown is an externally ticked timer. It never reads the wall clock;
// each Tick is one elapsed second.
type Countdown struct {
	remaining int
	running   bool
	expired   bool

	onTick   func(remaining int)
	onExpire func()
}

// NewCountdown returns a stopped countdown. onTick runs after every
// decrement and onExpire runs synchronously when the count reaches zero.
// Either may be nil.
func NewCountdown(onTick func(remaining int), onExpire func()) *Countdown {
	return &Countdown{onTick: onTick, onExpire: onExpire}
}

// Start (re)arms the countdown with total seconds.
func (c *Countdown) Start(total int) {
	c.remaining = total
	c.running = true
	c.expired = false
}

// Tick decrements the countdown by one second. Ticks after expiry or
// Cancel do nothing.
func (c *Countdown) Tick() {
	if !c.running {
		return
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.expired = true
	}
	if c.onTick != nil {
		c.onTick(c.remaining)
	}
	if c.expired && c.onExpire != nil {
		c.onExpire()
	}
}

// Cancel stops the countdown without expiring it.
func (c *Countdown) Cancel() {
	c.running = false
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Expired() bool  { return c.expired }
func (c *Countdown) Running() bool  { return c.running }

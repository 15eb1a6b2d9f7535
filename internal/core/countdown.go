package core

// Countdown is a tick counter that runs down to zero.
// The zero value is an expired countdown.
type Countdown struct {
	remaining int
}

// Start (re)arms the countdown for the given number of ticks.
// Non-positive durations leave it expired.
func (c *Countdown) Start(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.remaining = ticks
}

// Tick advances the countdown by one tick.
// Returns true on the tick the countdown reaches zero.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Active reports whether ticks remain.
func (c Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the number of ticks left.
func (c Countdown) Remaining() int {
	return c.remaining
}

// Stop expires the countdown immediately.
func (c *Countdown) Stop() {
	c.remaining = 0
}

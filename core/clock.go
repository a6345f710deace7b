package core

import "time"

// Clock measures wall time between ticks in milliseconds.
type Clock struct {
	now       func() time.Time
	startTime time.Time
	lastTick  time.Time
	elapsed   float64
	running   bool
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Starts the clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.lastTick = c.startTime
	c.elapsed = 0
	c.running = true
}

// Stops the clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

// Tick returns the milliseconds passed since the previous Tick (or Start) and
// updates the total elapsed time. Has no effect on non-started clocks.
func (c *Clock) Tick() float64 {
	if !c.running {
		return 0
	}
	now := c.now()
	dt := float64(now.Sub(c.lastTick)) / float64(time.Millisecond)
	c.lastTick = now
	c.elapsed = float64(now.Sub(c.startTime)) / float64(time.Millisecond)
	return dt
}

// Elapsed returns the milliseconds between Start and the latest Tick.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

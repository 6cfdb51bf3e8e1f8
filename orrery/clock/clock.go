// Package clock measures frame time and caps the frame rate.
package clock

import "time"

const fpsWindow = 10

// Clock is a blocking frame limiter. It is not safe for concurrent use;
// the frame loop owns it.
type Clock struct {
	now   func() time.Time
	sleep func(time.Duration)

	interval time.Duration
	last     time.Time

	samples [fpsWindow]time.Duration
	n       int
	next    int
}

type Option func(*Clock)

// WithTime injects the time source and the sleep function, for tests.
func WithTime(now func() time.Time, sleep func(time.Duration)) Option {
	return func(c *Clock) {
		c.now = now
		c.sleep = sleep
	}
}

// New returns a clock capped at fps frames per second. The first Tick
// measures from the moment New returns.
func New(fps int, opts ...Option) *Clock {
	c := &Clock{now: time.Now, sleep: time.Sleep}
	for _, o := range opts {
		o(c)
	}
	if fps > 0 {
		c.interval = time.Second / time.Duration(fps)
	}
	c.last = c.now()
	return c
}

func (c *Clock) Interval() time.Duration { return c.interval }

// Tick blocks until at least one frame interval has passed since the
// previous frame boundary and returns the time elapsed since it. Frames
// are never skipped: an overrun frame just reports a longer delta.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if wait := c.interval - now.Sub(c.last); wait > 0 {
		c.sleep(wait)
		now = c.now()
	}

	dt := now.Sub(c.last)
	if dt < 0 {
		dt = 0
	}
	c.last = now
	c.record(dt)
	return dt
}

// FPS returns the average frame rate over the last ten ticks, or 0 before
// the first tick.
func (c *Clock) FPS() float64 {
	if c.n == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < c.n; i++ {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.n) / total.Seconds()
}

func (c *Clock) record(dt time.Duration) {
	c.samples[c.next] = dt
	c.next = (c.next + 1) % fpsWindow
	if c.n < fpsWindow {
		c.n++
	}
}

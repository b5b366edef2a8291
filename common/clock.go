package common

// Clock converts a fixed tick rate into whole-millisecond deltas. The
// fractional remainder is carried so the deltas average 1000/tps.
type Clock struct {
	tps   int
	carry int
}

// NewClock returns a clock for tps ticks per second. Non-positive rates use FPS.
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = FPS
	}
	return &Clock{tps: tps}
}

// TPS returns the configured tick rate.
func (c *Clock) TPS() int {
	return c.tps
}

// Tick returns the milliseconds covered by the next tick.
func (c *Clock) Tick() int {
	c.carry += 1000
	ms := c.carry / c.tps
	c.carry -= ms * c.tps
	return ms
}

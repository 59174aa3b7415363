package blocks

import "time"

// DefaultMaxCatchUp bounds the drop intents emitted by a single Tick.
const DefaultMaxCatchUp = 10

// Clock turns elapsed wall time into gravity drop intents.
type Clock struct {
	acc        time.Duration
	maxCatchUp int
}

// NewClock creates a clock that emits at most maxCatchUp intents per Tick.
// Non-positive values use DefaultMaxCatchUp.
func NewClock(maxCatchUp int) *Clock {
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Clock{maxCatchUp: maxCatchUp}
}

// Tick adds elapsed to the accumulator and returns one intent per whole
// interval, keeping the remainder. When the cap is hit the surplus
// intervals are discarded and only the sub-interval remainder is kept.
func (c *Clock) Tick(elapsed, interval time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	if interval <= 0 {
		return 0
	}

	n := int(c.acc / interval)
	if n > c.maxCatchUp {
		c.acc %= interval
		return c.maxCatchUp
	}
	c.acc -= time.Duration(n) * interval
	return n
}

// Pending returns the accumulated time not yet turned into intents.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}

// Package clock holds the digital clock's tick and countdown state machine.
package clock

import (
	"github.com/jonboulle/clockwork"
)

// Layout is the 24-hour, zero-padded HH:mm:ss display format.
const Layout = "15:04:05"

// State is the lifecycle of a Clock.
type State uint8

const (
	Running State = iota
	// Stopped is terminal and only reached by counting down to zero.
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Clock advances one logical second per Tick.
type Clock struct {
	clk       clockwork.Clock
	remaining int64
	text      string
	state     State
}

// New returns a running clock. remaining is the number of ticks before the
// clock stops; zero or negative runs forever. A nil clk uses the real clock.
func New(remaining int64, clk clockwork.Clock) *Clock {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	if remaining < 0 {
		remaining = 0
	}
	return &Clock{clk: clk, remaining: remaining}
}

// Tick refreshes the time of day and counts down. done is true on the single
// tick that takes the countdown from one to zero.
func (c *Clock) Tick() (text string, done bool) {
	c.text = c.clk.Now().Format(Layout)
	if c.state == Stopped || c.remaining <= 0 {
		return c.text, false
	}
	c.remaining--
	if c.remaining == 0 {
		c.state = Stopped
		return c.text, true
	}
	return c.text, false
}

// Text returns the last rendered time, empty before the first tick.
func (c *Clock) Text() string { return c.text }

// Remaining returns the ticks left before the clock stops, 0 when unbounded
// or stopped.
func (c *Clock) Remaining() int64 { return c.remaining }

func (c *Clock) State() State { return c.state }

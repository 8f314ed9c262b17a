package hal

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type hostTime struct {
	ch  chan uint64
	seq uint64

	clk    clockwork.Clock
	period time.Duration
	last   time.Time
}

func newHostTime(clk clockwork.Clock, period time.Duration) *hostTime {
	if period <= 0 {
		period = time.Second
	}
	return &hostTime{ch: make(chan uint64, 8), clk: clk, period: period}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// poll emits at most one tick once a full period has elapsed since the last
// one. A late poll does not produce a burst of ticks: the period restarts
// from now.
func (t *hostTime) poll() {
	now := t.clk.Now()
	if t.last.IsZero() {
		t.last = now
		return
	}
	if now.Sub(t.last) < t.period {
		return
	}
	t.last = now
	t.emit()
}

func (t *hostTime) emit() {
	t.seq++
	select {
	case t.ch <- t.seq:
	default:
	}
}

package clock

import (
	"log/slog"

	"desktoys/hal"
	clockcore "desktoys/internal/clock"
)

// Renderer shows the clock text on one surface.
type Renderer interface {
	Render(text string) error
	// Finish runs once, right after the final tick.
	Finish() error
}

// Task advances the clock once per host tick and hands the text to its
// renderer. The first Step ticks immediately so the initial display is never
// stale.
type Task struct {
	clk   *clockcore.Clock
	ticks <-chan uint64
	r     Renderer
	log   *slog.Logger

	started bool
}

func New(h hal.HAL, c *clockcore.Clock, r Renderer, logger *slog.Logger) *Task {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Task{clk: c, r: r, log: logger}
	if ht := h.Time(); ht != nil {
		t.ticks = ht.Ticks()
	}
	return t
}

// Step consumes every pending tick. It returns hal.ErrStop once the
// countdown reaches zero.
func (t *Task) Step() error {
	if !t.started {
		t.started = true
		if err := t.advance(); err != nil {
			return err
		}
	}
	if t.ticks == nil {
		return nil
	}
	for {
		select {
		case <-t.ticks:
			if err := t.advance(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (t *Task) advance() error {
	text, done := t.clk.Tick()
	if err := t.r.Render(text); err != nil {
		return err
	}
	if !done {
		return nil
	}
	t.log.Debug("clock: countdown finished", "time", text)
	if err := t.r.Finish(); err != nil {
		return err
	}
	return hal.ErrStop
}

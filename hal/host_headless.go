package hal

import (
	"context"
	"errors"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Config

	// Period between steps. Zero means one second.
	Period time.Duration
	// Ticks stops the runner after N ticks (0 = run until the step stops it).
	Ticks uint64
}

// RunHeadless drives the step function without opening a window. The step
// runs once immediately, then once per period with one pending tick on the
// HAL time stream. Returning ErrStop from the step ends the run with a nil
// error.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	period := cfg.Period
	if period <= 0 {
		period = time.Second
	}

	h := newHost(cfg.Config)
	step := newApp(h)
	if step == nil {
		return nil
	}

	if err := step(); err != nil {
		return stepResult(err)
	}

	t := h.t.clk.NewTicker(period)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.Chan():
			h.t.emit()
			if err := step(); err != nil {
				return stepResult(err)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func stepResult(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

package clock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"desktoys/app"
	"desktoys/hal"
	"desktoys/internal/buildinfo"
	clockcore "desktoys/internal/clock"

	"github.com/jonboulle/clockwork"
)

const consoleBanner = "Console Clock — Ctrl+C to exit"

// Window shows the clock in a small desktop window.
type Window struct {
	Seconds int64
	Scale   int
	Clock   clockwork.Clock
	Log     *slog.Logger
}

func (w Window) Run(ctx context.Context) error {
	cfg := hal.WindowConfig{
		Config: hal.Config{Width: Width, Height: Height, TickPeriod: time.Second, Clock: w.Clock},
		Title:  "Digital Clock (" + buildinfo.Short() + ")",
		Scale:  w.Scale,
	}
	return hal.RunWindow(cfg, func(h hal.HAL) func() error {
		t := New(h, clockcore.New(w.Seconds, w.Clock), newLabelRenderer(h.Display()), w.Log)
		return app.GuardStep("clock", func() error {
			if ctx.Err() != nil {
				return hal.ErrStop
			}
			return t.Step()
		})
	})
}

// Console prints the clock on one overwritten terminal line.
type Console struct {
	Seconds int64
	Out     io.Writer
	Clock   clockwork.Clock
	Log     *slog.Logger
}

func (c Console) Run(ctx context.Context) error {
	var r consoleRenderer
	cfg := hal.HeadlessConfig{
		Config: hal.Config{Clock: c.Clock, Stdout: c.Out},
		Period: time.Second,
	}
	err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
		r = consoleRenderer{w: h.Console()}
		fmt.Fprintln(r.w, consoleBanner)
		t := New(h, clockcore.New(c.Seconds, c.Clock), r, c.Log)
		return app.GuardStep("clock", t.Step)
	}, cfg)
	if errors.Is(err, context.Canceled) && r.w != nil {
		_ = r.Finish()
	}
	return err
}

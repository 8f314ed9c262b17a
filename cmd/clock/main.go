package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"desktoys/app"
	"desktoys/hal"
	"desktoys/tasks/clock"
)

type CLI struct {
	app.Globals

	Seconds int64 `arg:"" optional:"" help:"Stop after this many seconds (0 or absent runs until closed)."`
}

func main() {
	if err := app.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	var cli CLI
	app.Parse(&cli, "clock", "Digital clock with a window or a console front-end.")

	mode, err := app.Resolve(cli.Mode, hal.DisplayAvailable())
	if err != nil {
		slog.Error("Invalid mode", "error", err)
		os.Exit(1)
	}
	slog.Debug("clock: starting", "mode", mode, "seconds", cli.Seconds)

	fe, err := app.Select(mode,
		clock.Window{Seconds: cli.Seconds, Scale: cli.Scale},
		clock.Console{Seconds: cli.Seconds, Out: os.Stdout},
	)
	if err != nil {
		slog.Error("Invalid mode", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Run(ctx, fe); err != nil {
		slog.Error("Clock failed", "error", err)
		os.Exit(1)
	}
}

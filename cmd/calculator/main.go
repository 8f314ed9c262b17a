package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"desktoys/app"
	"desktoys/hal"
	"desktoys/tasks/calculator"
)

type CLI struct {
	app.Globals
}

func main() {
	if err := app.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	var cli CLI
	app.Parse(&cli, "calculator", "Four-function calculator with a window or a console front-end.")

	mode, err := app.Resolve(cli.Mode, hal.DisplayAvailable())
	if err != nil {
		slog.Error("Invalid mode", "error", err)
		os.Exit(1)
	}
	if cli.Mode == app.ModeAuto && mode == app.ModeConsole {
		fmt.Println(calculator.HeadlessNotice)
	}
	slog.Debug("calculator: starting", "mode", mode)

	con := hal.New(hal.Config{}).Console()
	fe, err := app.Select(mode,
		calculator.Window{Scale: cli.Scale},
		calculator.Console{In: con, Out: con},
	)
	if err != nil {
		slog.Error("Invalid mode", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Run(ctx, fe); err != nil {
		slog.Error("Calculator failed", "error", err)
		os.Exit(1)
	}
}

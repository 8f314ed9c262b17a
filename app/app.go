package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"desktoys/internal/buildinfo"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// Mode selects the front-end a program runs with.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeWindow  Mode = "window"
	ModeConsole Mode = "console"
)

// Frontend is one input surface driving a program's state machine.
type Frontend interface {
	Run(ctx context.Context) error
}

// FrontendFunc adapts a function to Frontend.
type FrontendFunc func(ctx context.Context) error

func (f FrontendFunc) Run(ctx context.Context) error { return f(ctx) }

// Globals are the flags both programs share.
type Globals struct {
	Mode    Mode             `help:"Front-end to use (${enum})." enum:"auto,window,console" default:"auto" env:"DESKTOYS_MODE"`
	Scale   int              `help:"Window scale factor." default:"2" env:"DESKTOYS_SCALE"`
	Verbose bool             `short:"v" help:"Enable verbose logging." env:"DESKTOYS_VERBOSE"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit."`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (g *Globals) AfterApply() error {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadEnv reads an optional .env file from the working directory so the
// env-bound flags can be set there.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Parse parses os.Args into cli. Malformed arguments are fatal.
func Parse(cli any, name, description string) *kong.Context {
	return kong.Parse(cli,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": name + " " + buildinfo.String()},
	)
}

// Resolve picks the concrete mode once at startup. Auto prefers a window
// when a display is available.
func Resolve(mode Mode, displayAvailable bool) (Mode, error) {
	switch mode {
	case ModeAuto, "":
		if displayAvailable {
			return ModeWindow, nil
		}
		return ModeConsole, nil
	case ModeWindow, ModeConsole:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

// Select returns the front-end for a resolved mode.
func Select(mode Mode, window, console Frontend) (Frontend, error) {
	switch mode {
	case ModeWindow:
		return window, nil
	case ModeConsole:
		return console, nil
	default:
		return nil, fmt.Errorf("unresolved mode %q", mode)
	}
}

// Run executes fe and maps a user interrupt to a clean exit.
func Run(ctx context.Context, fe Frontend) error {
	if err := fe.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tcs := []struct {
		mode      Mode
		available bool
		want      Mode
	}{
		{mode: ModeAuto, available: true, want: ModeWindow},
		{mode: ModeAuto, available: false, want: ModeConsole},
		{mode: "", available: false, want: ModeConsole},
		{mode: ModeWindow, available: false, want: ModeWindow},
		{mode: ModeConsole, available: true, want: ModeConsole},
	}
	for _, tc := range tcs {
		got, err := Resolve(tc.mode, tc.available)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "Resolve(%q, %v)", tc.mode, tc.available)
	}

	_, err := Resolve("tty", true)
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	var picked string
	window := FrontendFunc(func(context.Context) error { picked = "window"; return nil })
	console := FrontendFunc(func(context.Context) error { picked = "console"; return nil })

	fe, err := Select(ModeConsole, window, console)
	require.NoError(t, err)
	require.NoError(t, fe.Run(context.Background()))
	require.Equal(t, "console", picked)

	fe, err = Select(ModeWindow, window, console)
	require.NoError(t, err)
	require.NoError(t, fe.Run(context.Background()))
	require.Equal(t, "window", picked)

	_, err = Select(ModeAuto, window, console)
	require.Error(t, err)
}

func TestRunTreatsCancelAsCleanExit(t *testing.T) {
	err := Run(context.Background(), FrontendFunc(func(context.Context) error {
		return context.Canceled
	}))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = Run(context.Background(), FrontendFunc(func(context.Context) error { return boom }))
	require.ErrorIs(t, err, boom)
}

func TestGuardStep(t *testing.T) {
	step := GuardStep("test", func() error { panic("kaboom") })
	err := step()
	var info *PanicInfo
	require.ErrorAs(t, err, &info)
	require.Equal(t, "kaboom", info.Value)
	require.NotEmpty(t, info.Stack)
	require.Equal(t, "test panic: kaboom", err.Error())

	ok := GuardStep("test", func() error { return nil })
	require.NoError(t, ok())
	require.Nil(t, GuardStep("test", nil))
}

func TestGlobalsAfterApply(t *testing.T) {
	g := &Globals{Verbose: true}
	require.NoError(t, g.AfterApply())
}

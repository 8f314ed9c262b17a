package main

import (
	"testing"

	"desktoys/app"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (CLI, error) {
	t.Helper()
	var cli CLI
	p, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = p.Parse(args)
	return cli, err
}

func TestParseSeconds(t *testing.T) {
	cli, err := parse(t)
	require.NoError(t, err)
	require.Equal(t, int64(0), cli.Seconds)
	require.Equal(t, app.ModeAuto, cli.Mode)

	cli, err = parse(t, "15", "--mode", "console")
	require.NoError(t, err)
	require.Equal(t, int64(15), cli.Seconds)
	require.Equal(t, app.ModeConsole, cli.Mode)
}

func TestParseRejectsMalformedSeconds(t *testing.T) {
	for _, arg := range []string{"abc", "1.5", "10s"} {
		_, err := parse(t, arg)
		require.Errorf(t, err, "seconds %q", arg)
	}
	_, err := parse(t, "--mode", "tty")
	require.Error(t, err)
}

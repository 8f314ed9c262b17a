package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local)

func TestTickFormatsTimeOfDay(t *testing.T) {
	fc := clockwork.NewFakeClockAt(epoch)
	c := New(0, fc)
	require.Equal(t, "", c.Text())

	text, done := c.Tick()
	require.False(t, done)
	require.Equal(t, "07:05:03", text)
	require.Equal(t, text, c.Text())

	fc.Advance(13*time.Hour + 54*time.Minute + 56*time.Second)
	text, _ = c.Tick()
	require.Equal(t, "20:59:59", text)
}

func TestCountdownStopsExactlyOnce(t *testing.T) {
	fc := clockwork.NewFakeClockAt(epoch)
	c := New(2, fc)

	_, done := c.Tick()
	require.False(t, done)
	require.Equal(t, int64(1), c.Remaining())
	require.Equal(t, Running, c.State())

	fc.Advance(time.Second)
	text, done := c.Tick()
	require.True(t, done)
	require.Equal(t, "07:05:04", text)
	require.Equal(t, int64(0), c.Remaining())
	require.Equal(t, Stopped, c.State())

	for i := 0; i < 5; i++ {
		fc.Advance(time.Second)
		_, done = c.Tick()
		require.False(t, done)
		require.Equal(t, Stopped, c.State())
		require.Equal(t, int64(0), c.Remaining())
	}
}

func TestUnboundedNeverStops(t *testing.T) {
	for _, remaining := range []int64{0, -1, -100} {
		c := New(remaining, clockwork.NewFakeClockAt(epoch))
		for i := 0; i < 1000; i++ {
			_, done := c.Tick()
			require.Falsef(t, done, "remaining=%d tick=%d", remaining, i)
		}
		require.Equal(t, Running, c.State())
	}
}

func TestSingleTickCountdown(t *testing.T) {
	c := New(1, clockwork.NewFakeClockAt(epoch))
	_, done := c.Tick()
	require.True(t, done)
	require.Equal(t, Stopped, c.State())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "running", Running.String())
	require.Equal(t, "stopped", Stopped.String())
	require.Equal(t, "unknown", State(7).String())
}

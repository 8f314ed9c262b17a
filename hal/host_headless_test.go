package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// advanceUntil keeps moving fc forward until done is closed.
func advanceUntil(t *testing.T, fc *clockwork.FakeClock, done <-chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.Fatal("runner did not finish")
		default:
		}
		fc.Advance(time.Second)
		time.Sleep(time.Millisecond)
	}
}

func TestRunHeadlessStopsOnErrStop(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls, ticks int
	var runErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		runErr = RunHeadless(context.Background(), func(h HAL) func() error {
			return func() error {
				calls++
				select {
				case <-h.Time().Ticks():
					ticks++
				default:
				}
				if calls == 3 {
					return ErrStop
				}
				return nil
			}
		}, HeadlessConfig{Config: Config{Clock: fc}})
	}()

	advanceUntil(t, fc, done)
	require.NoError(t, runErr)
	require.Equal(t, 3, calls)
	require.Equal(t, 2, ticks, "the immediate first step has no tick")
}

func TestRunHeadlessTickLimit(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls int
	var runErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		runErr = RunHeadless(context.Background(), func(HAL) func() error {
			return func() error {
				calls++
				return nil
			}
		}, HeadlessConfig{Config: Config{Clock: fc}, Ticks: 4})
	}()

	advanceUntil(t, fc, done)
	require.NoError(t, runErr)
	require.Equal(t, 5, calls)
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Config: Config{Clock: clockwork.NewFakeClock()}})
	require.ErrorIs(t, err, boom)
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error {
		return func() error { return nil }
	}, HeadlessConfig{Config: Config{Clock: clockwork.NewFakeClock()}})
	require.ErrorIs(t, err, context.Canceled)
}

//go:build !cgo

package hal

const windowSupported = false

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return ErrNoWindow
}

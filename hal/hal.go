package hal

import (
	"errors"
	"io"
)

var (
	// ErrStop is returned by a step function to end its runner cleanly.
	ErrStop = errors.New("hal: stop")

	ErrNotImplemented = errors.New("not implemented")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown
// and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent is a primary-button click in framebuffer coordinates.
type PointerEvent struct {
	X, Y  int
	Press bool
}

// Pointer provides mouse or touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// The tick period is chosen by the runner; each tick is one logical step and
// missed periods are never replayed.
type Time interface {
	Ticks() <-chan uint64
}

// Console is the line-oriented text surface.
type Console interface {
	io.Reader
	io.Writer
}

// HAL provides the only contact point between the programs and the host.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
	Console() Console
}

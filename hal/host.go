package hal

import (
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
)

// Config sizes the host devices.
type Config struct {
	Width  int
	Height int

	// TickPeriod paces the window-mode tick stream. Zero means one second.
	TickPeriod time.Duration
	Clock      clockwork.Clock

	Stdin  io.Reader
	Stdout io.Writer
}

type hostHAL struct {
	fb      *hostFramebuffer
	kbd     *hostKeyboard
	ptr     *hostPointer
	t       *hostTime
	console *hostConsole
}

// New returns a host HAL implementation.
func New(cfg Config) HAL {
	return newHost(cfg)
}

func newHost(cfg Config) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	return &hostHAL{
		fb:      newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:     newHostKeyboard(),
		ptr:     newHostPointer(),
		t:       newHostTime(cfg.Clock, cfg.TickPeriod),
		console: &hostConsole{r: cfg.Stdin, w: cfg.Stdout},
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Console() Console { return h.console }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

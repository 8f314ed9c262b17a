package hal

import (
	"errors"
	"os"
	"runtime"
)

// ErrNoWindow is returned by RunWindow when the binary was built without the
// window backend.
var ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Config

	Title string
	// Scale multiplies the framebuffer size to get the window size.
	Scale int
}

// DisplayAvailable reports whether a window can be opened: the window backend
// is compiled in and, on X11/Wayland systems, a display server is advertised.
func DisplayAvailable() bool {
	return displayAvailable(windowSupported, runtime.GOOS, os.Getenv)
}

func displayAvailable(supported bool, goos string, getenv func(string) string) bool {
	if !supported {
		return false
	}
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	case "android", "ios", "js", "wasip1":
		return false
	default:
		return true
	}
}

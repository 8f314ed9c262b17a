package hal

import (
	"io"
	"sync"
)

type hostConsole struct {
	mu sync.Mutex
	r  io.Reader
	w  io.Writer
}

func (c *hostConsole) Read(p []byte) (int, error) {
	if c.r == nil {
		return 0, ErrNotImplemented
	}
	return c.r.Read(p)
}

func (c *hostConsole) Write(p []byte) (int, error) {
	if c.w == nil {
		return 0, ErrNotImplemented
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

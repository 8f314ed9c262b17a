// Package haltest provides an in-memory hal.HAL for front-end tests.
package haltest

import (
	"bytes"
	"strings"

	"desktoys/hal"
)

// Fake is a hal.HAL whose input and tick streams are fed by the test.
type Fake struct {
	FB       hal.Framebuffer
	Keys     chan hal.KeyEvent
	Pointers chan hal.PointerEvent
	TickCh   chan uint64
	In       *strings.Reader
	Out      bytes.Buffer

	seq uint64
}

func New(width, height int) *Fake {
	return &Fake{
		FB:       hal.NewFramebuffer(width, height),
		Keys:     make(chan hal.KeyEvent, 64),
		Pointers: make(chan hal.PointerEvent, 64),
		TickCh:   make(chan uint64, 64),
		In:       strings.NewReader(""),
	}
}

func (f *Fake) Display() hal.Display { return display{f} }
func (f *Fake) Input() hal.Input     { return input{f} }
func (f *Fake) Time() hal.Time       { return ticks{f} }
func (f *Fake) Console() hal.Console { return console{f} }

// Type queues text input, one key event per rune.
func (f *Fake) Type(s string) {
	for _, r := range s {
		f.Keys <- hal.KeyEvent{Press: true, Rune: r}
	}
}

// Click queues a press and release at (x, y).
func (f *Fake) Click(x, y int) {
	f.Pointers <- hal.PointerEvent{X: x, Y: y, Press: true}
	f.Pointers <- hal.PointerEvent{X: x, Y: y, Press: false}
}

// Tick queues n ticks.
func (f *Fake) Tick(n int) {
	for i := 0; i < n; i++ {
		f.seq++
		f.TickCh <- f.seq
	}
}

// Lit counts non-black pixels.
func (f *Fake) Lit() int {
	buf := f.FB.Buffer()
	n := 0
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] != 0 || buf[i+1] != 0 {
			n++
		}
	}
	return n
}

type display struct{ f *Fake }

func (d display) Framebuffer() hal.Framebuffer { return d.f.FB }

type input struct{ f *Fake }

func (in input) Keyboard() hal.Keyboard { return keyboard{in.f} }
func (in input) Pointer() hal.Pointer   { return pointer{in.f} }

type keyboard struct{ f *Fake }

func (k keyboard) Events() <-chan hal.KeyEvent { return k.f.Keys }

type pointer struct{ f *Fake }

func (p pointer) Events() <-chan hal.PointerEvent { return p.f.Pointers }

type ticks struct{ f *Fake }

func (t ticks) Ticks() <-chan uint64 { return t.f.TickCh }

type console struct{ f *Fake }

func (c console) Read(p []byte) (int, error)  { return c.f.In.Read(p) }
func (c console) Write(p []byte) (int, error) { return c.f.Out.Write(p) }

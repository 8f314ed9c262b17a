package clock

import (
	"fmt"
	"image/color"
	"io"

	"desktoys/hal"
	"desktoys/internal/fbtext"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Framebuffer size of the clock window.
const (
	Width  = 160
	Height = 48
)

var (
	colorBG = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorFG = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
)

// labelRenderer draws the time centered in the framebuffer.
type labelRenderer struct {
	fb   hal.Framebuffer
	d    *fbtext.Display
	font tinyfont.Fonter
	last string
}

func newLabelRenderer(disp hal.Display) *labelRenderer {
	r := &labelRenderer{font: &freemono.Bold12pt7b}
	if disp != nil {
		r.fb = disp.Framebuffer()
	}
	if r.fb != nil {
		r.d = fbtext.New(r.fb)
	}
	return r
}

func (r *labelRenderer) Render(text string) error {
	if r.d == nil || text == r.last {
		return nil
	}
	r.last = text
	r.d.Fill(colorBG)
	w, h := int16(r.fb.Width()), int16(r.fb.Height())
	r.d.WriteCentered(r.font, 0, h/2+6, w, text, colorFG)
	return r.d.Display()
}

func (r *labelRenderer) Finish() error { return nil }

// consoleRenderer overwrites the current terminal line on every tick.
type consoleRenderer struct {
	w io.Writer
}

func (r consoleRenderer) Render(text string) error {
	if _, err := fmt.Fprint(r.w, "\r"+text); err != nil {
		return fmt.Errorf("clock: write: %w", err)
	}
	return nil
}

func (r consoleRenderer) Finish() error {
	if _, err := fmt.Fprintln(r.w); err != nil {
		return fmt.Errorf("clock: write: %w", err)
	}
	return nil
}

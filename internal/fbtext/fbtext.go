// Package fbtext draws rectangles and tinyfont text onto a hal.Framebuffer.
package fbtext

import (
	"image/color"

	"desktoys/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = (*Display)(nil)

// Display adapts an RGB565 framebuffer to the drivers.Displayer contract
// tinyfont draws through.
type Display struct {
	fb hal.Framebuffer
}

func New(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// FillRectangle paints a clipped rectangle.
func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// Fill paints the whole framebuffer.
func (d *Display) Fill(c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.ClearRGB(c.R, c.G, c.B)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(font tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox)
}

// WriteText draws s with its baseline at (x, y).
func (d *Display) WriteText(font tinyfont.Fonter, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, x, y, s, c)
}

// WriteCentered draws s centered horizontally in [x, x+width) with its
// baseline at y.
func (d *Display) WriteCentered(font tinyfont.Fonter, x, y, width int16, s string, c color.RGBA) {
	tw := TextWidth(font, s)
	d.WriteText(font, x+(width-int16(tw))/2, y, s, c)
}

// FitTail drops leading runes from s until it fits in maxWidth pixels, so the
// most recently typed characters stay visible.
func FitTail(font tinyfont.Fonter, s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	r := []rune(s)
	adv := make([]int, len(r))
	total := 0
	for i, c := range r {
		adv[i] = TextWidth(font, string(c))
		total += adv[i]
	}
	start := 0
	for start < len(r) && total > maxWidth {
		total -= adv[start]
		start++
	}
	return string(r[start:])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

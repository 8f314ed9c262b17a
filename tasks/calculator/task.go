package calculator

import (
	"context"
	"image/color"
	"log/slog"

	"desktoys/app"
	"desktoys/hal"
	"desktoys/internal/buildinfo"
	"desktoys/internal/calc"
	"desktoys/internal/fbtext"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Framebuffer size of the calculator window.
const (
	Width  = 240
	Height = 320
)

var (
	colorBG        = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	colorDisplayBG = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf0, A: 0xff}
	colorDisplayFG = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	colorKeyBG     = color.RGBA{R: 0x44, G: 0x44, B: 0x4c, A: 0xff}
	colorOpBG      = color.RGBA{R: 0xd8, G: 0x80, B: 0x20, A: 0xff}
	colorPressedBG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorKeyFG     = color.RGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff}
	colorPressedFG = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// Half the cap height of the key font, used to center labels vertically.
const labelRise = 6

// Task is the windowed calculator: a display field over a 4x4 button grid.
type Task struct {
	kbd hal.Keyboard
	ptr hal.Pointer

	fb   hal.Framebuffer
	d    *fbtext.Display
	font tinyfont.Fonter

	calc *calc.Calculator
	log  *slog.Logger

	buttons []button
	pressed string
	dirty   bool
}

// New binds a calculator to the host display and input devices.
func New(h hal.HAL, c *calc.Calculator, logger *slog.Logger) *Task {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Task{calc: c, log: logger, font: &freemono.Bold12pt7b, dirty: true}
	if in := h.Input(); in != nil {
		t.kbd = in.Keyboard()
		t.ptr = in.Pointer()
	}
	if disp := h.Display(); disp != nil {
		t.fb = disp.Framebuffer()
	}
	if t.fb != nil {
		t.d = fbtext.New(t.fb)
		t.buttons = layoutButtons(t.fb.Width(), t.fb.Height())
	}
	return t
}

// Step drains pending input and redraws when something changed.
func (t *Task) Step() error {
	t.drainKeys()
	t.drainPointer()
	if !t.dirty {
		return nil
	}
	t.dirty = false
	return t.render()
}

func (t *Task) drainKeys() {
	if t.kbd == nil {
		return
	}
	for {
		select {
		case ev := <-t.kbd.Events():
			if key, ok := keyForEvent(ev); ok {
				t.press(key)
			}
		default:
			return
		}
	}
}

func (t *Task) drainPointer() {
	if t.ptr == nil {
		return
	}
	for {
		select {
		case ev := <-t.ptr.Events():
			if !ev.Press {
				if t.pressed != "" {
					t.pressed = ""
					t.dirty = true
				}
				continue
			}
			if key, ok := hitTest(t.buttons, ev.X, ev.Y); ok {
				t.press(key)
				t.pressed = key
			}
		default:
			return
		}
	}
}

func (t *Task) press(key string) {
	if err := t.calc.Press(key); err != nil {
		t.log.Debug("calculator: ignored key", "key", key, "err", err)
		return
	}
	t.log.Debug("calculator: key", "key", key, "display", t.calc.Display())
	t.dirty = true
}

// keyForEvent maps typed text and editing keys onto button labels.
func keyForEvent(ev hal.KeyEvent) (string, bool) {
	if !ev.Press {
		return "", false
	}
	switch ev.Code {
	case hal.KeyEnter:
		return "=", true
	case hal.KeyEscape:
		return "C", true
	case hal.KeyUnknown:
	default:
		return "", false
	}
	switch r := ev.Rune; {
	case r >= '0' && r <= '9':
		return string(r), true
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '=':
		return string(r), true
	case r == 'c' || r == 'C':
		return "C", true
	default:
		return "", false
	}
}

func (t *Task) render() error {
	if t.d == nil {
		return nil
	}
	t.d.Fill(colorBG)

	dr := displayRect(t.fb.Width())
	_ = t.d.FillRectangle(int16(dr.x), int16(dr.y), int16(dr.w), int16(dr.h), colorDisplayBG)
	text := fbtext.FitTail(t.font, t.calc.Display(), dr.w-2*margin)
	t.d.WriteText(t.font, int16(dr.x+margin), int16(dr.y+dr.h/2+labelRise), text, colorDisplayFG)

	for _, b := range t.buttons {
		bg, fg := colorKeyBG, colorKeyFG
		if _, isOp := calc.ParseOperator(b.label); isOp || b.label == "=" {
			bg = colorOpBG
		}
		if b.label == t.pressed {
			bg, fg = colorPressedBG, colorPressedFG
		}
		_ = t.d.FillRectangle(int16(b.r.x), int16(b.r.y), int16(b.r.w), int16(b.r.h), bg)
		t.d.WriteCentered(t.font, int16(b.r.x), int16(b.r.y+b.r.h/2+labelRise), int16(b.r.w), b.label, fg)
	}
	return t.d.Display()
}

// Window runs the calculator in a desktop window.
type Window struct {
	Scale int
	Log   *slog.Logger
}

func (w Window) Run(ctx context.Context) error {
	cfg := hal.WindowConfig{
		Config: hal.Config{Width: Width, Height: Height},
		Title:  "Calculator (" + buildinfo.Short() + ")",
		Scale:  w.Scale,
	}
	return hal.RunWindow(cfg, func(h hal.HAL) func() error {
		t := New(h, calc.New(), w.Log)
		return app.GuardStep("calculator", func() error {
			if ctx.Err() != nil {
				return hal.ErrStop
			}
			return t.Step()
		})
	})
}

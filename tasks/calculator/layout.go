package calculator

// Keys is the button grid in row-major order.
var Keys = [16]string{
	"7", "8", "9", "/",
	"4", "5", "6", "*",
	"1", "2", "3", "-",
	"0", "C", "=", "+",
}

const (
	gridCols = 4
	gridRows = 4

	margin   = 8
	gap      = 6
	displayH = 48
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type button struct {
	label string
	r     rect
}

// displayRect is the text field above the grid.
func displayRect(width int) rect {
	return rect{x: margin, y: margin, w: width - 2*margin, h: displayH}
}

// layoutButtons splits the area under the display into the 4x4 key grid.
func layoutButtons(width, height int) []button {
	top := margin + displayH + margin
	bw := (width - 2*margin - (gridCols-1)*gap) / gridCols
	bh := (height - top - margin - (gridRows-1)*gap) / gridRows
	if bw <= 0 || bh <= 0 {
		return nil
	}

	out := make([]button, 0, len(Keys))
	for i, k := range Keys {
		col := i % gridCols
		row := i / gridCols
		out = append(out, button{
			label: k,
			r: rect{
				x: margin + col*(bw+gap),
				y: top + row*(bh+gap),
				w: bw,
				h: bh,
			},
		})
	}
	return out
}

func hitTest(buttons []button, x, y int) (string, bool) {
	for _, b := range buttons {
		if b.r.contains(x, y) {
			return b.label, true
		}
	}
	return "", false
}

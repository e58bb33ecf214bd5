package core

// Canvas dimensions. Buttons are laid out in this virtual space and the
// platform maps pointer positions into it.
const (
	CanvasW = 1200.0
	CanvasH = 800.0
)

// Button is a clickable rectangle on the canvas. Action is only meaningful
// within the button's group.
type Button struct {
	X, Y, W, H float64
	Label      string
	Action     int
	Hovered    bool
}

// Contains reports whether (x, y) lies inside the button. Edges are inclusive.
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// HitTest returns the action of the first button in list order containing (x, y).
func HitTest(buttons []Button, x, y float64) (int, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action, true
		}
	}
	return 0, false
}

// UpdateHover sets Hovered on every button independently.
func UpdateHover(buttons []Button, x, y float64) {
	for i := range buttons {
		buttons[i].Hovered = buttons[i].Contains(x, y)
	}
}

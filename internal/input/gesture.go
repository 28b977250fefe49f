package input

// Point is a pointer position in screen pixels.
type Point struct {
	X, Y float64
}

// Gesture tracks the pointer state of the current drag. It stores no
// page-flow state; the flip debounce lives in flow.State.
type Gesture struct {
	// pressed is where the primary button went down.
	pressed Point

	// last is the most recent pointer position seen during the drag.
	last Point

	// dragging is true while the primary button is held.
	dragging bool
}

// Press starts a new drag candidate at the given position.
func (g *Gesture) Press(x, y float64) {
	g.pressed = Point{X: x, Y: y}
	g.last = g.pressed
	g.dragging = true
}

// Release ends the drag.
func (g *Gesture) Release() {
	g.dragging = false
}

// Dragging reports whether the primary button is held.
func (g *Gesture) Dragging() bool {
	return g.dragging
}

// Last returns the most recent pointer position of the drag.
func (g *Gesture) Last() Point {
	return g.last
}

// SetLast updates the most recent pointer position. Called after each
// drag delta is applied, with the warped position when cursor wrapping
// kicked in.
func (g *Gesture) SetLast(x, y float64) {
	g.last = Point{X: x, Y: y}
}

// Unmoved reports whether the pointer is still exactly where the button
// went down. A press-release pair with no motion is a click, not a drag.
func (g *Gesture) Unmoved(x, y float64) bool {
	return g.pressed.X == x && g.pressed.Y == y
}

// Reset clears all pointer state. Called when the document changes.
func (g *Gesture) Reset() {
	*g = Gesture{}
}

package input

import "github.com/dshills/riffle/internal/input/key"

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota

	// ButtonLeft is the primary mouse button.
	ButtonLeft

	// ButtonMiddle is the middle mouse button.
	ButtonMiddle

	// ButtonRight is the secondary mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Kind classifies a queued input event.
type Kind uint8

const (
	// KindNone is the zero event kind.
	KindNone Kind = iota

	// KindKeyPress is a key press.
	KindKeyPress

	// KindKeyRelease is a key release.
	KindKeyRelease

	// KindWheel is a mouse-wheel tick.
	KindWheel

	// KindPointerPress is a mouse button press.
	KindPointerPress

	// KindPointerMove is pointer motion.
	KindPointerMove

	// KindPointerRelease is a mouse button release.
	KindPointerRelease

	// KindDrop is a drag-and-drop of file paths onto the window.
	KindDrop
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindKeyPress:
		return "key-press"
	case KindKeyRelease:
		return "key-release"
	case KindWheel:
		return "wheel"
	case KindPointerPress:
		return "pointer-press"
	case KindPointerMove:
		return "pointer-move"
	case KindPointerRelease:
		return "pointer-release"
	case KindDrop:
		return "drop"
	default:
		return "none"
	}
}

// Coalescable reports whether consecutive queued events of this kind
// can be collapsed to the most recent one. Only pointer motion is safe
// to collapse; discrete events like key presses and wheel ticks each
// carry meaning.
func (k Kind) Coalescable() bool {
	return k == KindPointerMove
}

// Event is one raw input event as delivered by the windowing backend.
type Event struct {
	// Kind classifies the event; it decides which fields are set.
	Kind Kind

	// Key is set for key press/release events.
	Key key.Event

	// Button is set for pointer press/release events.
	Button Button

	// Mods are the modifier keys held during a pointer or wheel event.
	Mods key.Modifier

	// X, Y is the pointer position for pointer and wheel events.
	X, Y float64

	// WheelX, WheelY are wheel tick deltas; positive Y is a downward
	// (forward) tick, positive X a rightward tick.
	WheelX, WheelY float64

	// ButtonsHeld is the set of buttons held during a move or wheel
	// event, as a bitmask of 1<<Button.
	ButtonsHeld uint8

	// Paths holds dropped file paths for KindDrop.
	Paths []string

	// FromSelf marks drops that originated inside the window.
	FromSelf bool
}

// Held reports whether the given button is in ButtonsHeld.
func (e Event) Held(b Button) bool {
	return e.ButtonsHeld&(1<<b) != 0
}

// HoldMask builds a ButtonsHeld bitmask from a button list.
func HoldMask(buttons ...Button) uint8 {
	var m uint8
	for _, b := range buttons {
		m |= 1 << b
	}
	return m
}

package key

// Key identifies a keyboard key independent of the windowing toolkit.
type Key uint8

const (
	// KeyNone indicates no key.
	KeyNone Key = iota

	// KeyRune is a printable character key; the Event carries the rune.
	KeyRune

	// KeyEscape is the Escape key.
	KeyEscape

	// KeyEnter is the Return/Enter key.
	KeyEnter

	// KeySpace is the space bar.
	KeySpace

	// KeyTab is the Tab key.
	KeyTab

	// KeyBackspace is the Backspace key.
	KeyBackspace

	// KeyUp is the up arrow.
	KeyUp

	// KeyDown is the down arrow.
	KeyDown

	// KeyLeft is the left arrow.
	KeyLeft

	// KeyRight is the right arrow.
	KeyRight

	// KeyHome is the Home key.
	KeyHome

	// KeyEnd is the End key.
	KeyEnd

	// KeyPageUp is the Page Up key.
	KeyPageUp

	// KeyPageDown is the Page Down key.
	KeyPageDown

	// KeyControl is a bare Control press. Tracked so holding Ctrl can
	// latch single-page stepping in double-page mode.
	KeyControl

	// KeyF11 is the F11 key.
	KeyF11

	// KeyKP0 through KeyKP9 are the numeric keypad digits.
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
)

// keyNames maps keys to their canonical chord names.
var keyNames = map[Key]string{
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyControl:   "Control",
	KeyF11:       "F11",
	KeyKP0:       "KP0",
	KeyKP1:       "KP1",
	KeyKP2:       "KP2",
	KeyKP3:       "KP3",
	KeyKP4:       "KP4",
	KeyKP5:       "KP5",
	KeyKP6:       "KP6",
	KeyKP7:       "KP7",
	KeyKP8:       "KP8",
	KeyKP9:       "KP9",
}

// namedKeys is the reverse of keyNames, keyed by lower-case name.
var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[lower(name)] = k
	}
	return m
}()

// String returns the canonical name of the key, or "" for KeyNone and
// KeyRune (the rune itself names those events).
func (k Key) String() string {
	return keyNames[k]
}

// IsKeypad returns true for numeric keypad keys.
func (k Key) IsKeypad() bool {
	return k >= KeyKP0 && k <= KeyKP9
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

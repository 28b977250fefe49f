package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press or release.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates an event for a special key.
func NewEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Chord returns the canonical chord string used for keymap lookup,
// e.g. "Space", "Shift+Space", "Alt+Right", "q". For character events
// Shift is folded into the rune and not spelled out.
func (e Event) Chord() string {
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods & ^ModShift
	}
	name := e.Key.String()
	if e.IsRune() {
		name = string(e.Rune)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// String returns the canonical chord string.
func (e Event) String() string {
	return e.Chord()
}

// ParseChord parses a chord string like "Shift+Space", "Alt+Right",
// "KP1", or "q" into an Event suitable for keymap matching.
func ParseChord(s string) (Event, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 || s == "" {
		return Event{}, fmt.Errorf("key: empty chord")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := parseModifier(p)
		if !ok {
			return Event{}, fmt.Errorf("key: unknown modifier %q in chord %q", p, s)
		}
		mods = mods.With(m)
	}

	last := parts[len(parts)-1]
	if k, ok := namedKeys[lower(last)]; ok {
		return NewEvent(k, mods), nil
	}
	runes := []rune(last)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		// Shift never appears in a character chord; the rune carries it.
		return NewRuneEvent(runes[0], mods & ^ModShift), nil
	}
	return Event{}, fmt.Errorf("key: unknown key %q in chord %q", last, s)
}

package keymap

import (
	"fmt"

	"github.com/dshills/riffle/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the chord that triggers this binding, in the canonical
	// form produced by key.Event.Chord, e.g. "Space", "Alt+Right".
	Keys string

	// Action is the command to execute, e.g. "page.next",
	// "scroll.smartDown".
	Action string

	// Args are fixed arguments for the action.
	Args map[string]any

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// Keymap is a named, ordered collection of bindings.
type Keymap struct {
	// Name identifies the keymap, e.g. "default", "user".
	Name string

	// Source records where the keymap came from ("default", "config").
	Source string

	// Bindings are the mappings in this keymap.
	Bindings []Binding
}

// parsedKeymap is a keymap with its chords resolved for lookup.
type parsedKeymap struct {
	keymap *Keymap
	chords map[string]*Binding
}

// parse resolves every binding's chord, rejecting the keymap wholesale
// if any chord is invalid.
func parse(km *Keymap) (*parsedKeymap, error) {
	p := &parsedKeymap{
		keymap: km,
		chords: make(map[string]*Binding, len(km.Bindings)),
	}
	for i := range km.Bindings {
		b := &km.Bindings[i]
		ev, err := key.ParseChord(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("keymap %s: binding %q: %w", km.Name, b.Keys, err)
		}
		p.chords[ev.Chord()] = b
	}
	return p, nil
}

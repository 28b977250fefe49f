package keymap

import (
	"fmt"
	"sync"

	"github.com/dshills/riffle/internal/input/key"
)

// Registry manages all keymaps and provides chord lookup.
type Registry struct {
	mu sync.RWMutex

	// keymaps in registration order; later entries shadow earlier ones.
	keymaps []*parsedKeymap

	// byName prevents duplicate registration.
	byName map[string]*parsedKeymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*parsedKeymap)}
}

// Register parses and adds a keymap. A keymap with the same name
// replaces the previous registration in place.
func (r *Registry) Register(km *Keymap) error {
	if km == nil || km.Name == "" {
		return fmt.Errorf("keymap: missing name")
	}
	p, err := parse(km)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[km.Name]; ok {
		for i, existing := range r.keymaps {
			if existing == old {
				r.keymaps[i] = p
				break
			}
		}
	} else {
		r.keymaps = append(r.keymaps, p)
	}
	r.byName[km.Name] = p
	return nil
}

// Lookup resolves a key event to a binding, or nil if no keymap binds
// the chord. The most recently registered keymap wins.
func (r *Registry) Lookup(ev key.Event) *Binding {
	chord := ev.Chord()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.keymaps) - 1; i >= 0; i-- {
		if b, ok := r.keymaps[i].chords[chord]; ok {
			return b
		}
	}
	return nil
}

// Bindings returns all active bindings, shadowed chords excluded,
// in no particular order.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []Binding
	for i := len(r.keymaps) - 1; i >= 0; i-- {
		for chord, b := range r.keymaps[i].chords {
			if !seen[chord] {
				seen[chord] = true
				out = append(out, *b)
			}
		}
	}
	return out
}

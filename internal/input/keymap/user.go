package keymap

import "sort"

// FromConfig builds the user keymap from a configuration table mapping
// key chords to action names. The chords are validated when the keymap
// is registered. Registering the result replaces any previous user
// keymap, so an emptied table clears earlier overrides.
func FromConfig(bindings map[string]string) *Keymap {
	chords := make([]string, 0, len(bindings))
	for chord := range bindings {
		chords = append(chords, chord)
	}
	sort.Strings(chords)

	km := &Keymap{
		Name:     "user",
		Source:   "config",
		Bindings: make([]Binding, 0, len(chords)),
	}
	for _, chord := range chords {
		km.Bindings = append(km.Bindings, Binding{
			Keys:     chord,
			Action:   bindings[chord],
			Category: "User",
		})
	}
	return km
}

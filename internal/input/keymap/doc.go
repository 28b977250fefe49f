// Package keymap maps key chords to named viewer actions. Keymaps are
// registered in order; later registrations (user configuration) shadow
// earlier ones (built-in defaults) for the same chord.
package keymap

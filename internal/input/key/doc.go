// Package key defines toolkit-independent keyboard events: key codes,
// modifier bitmasks, and the canonical chord strings used by keymap
// bindings. The windowing backend translates its native key events into
// this representation before they reach the input router.
package key

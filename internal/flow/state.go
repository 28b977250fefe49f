package flow

// State holds the per-gesture flow state. It is owned by the engine,
// reset whenever the document changes, and only ever touched from the
// event-dispatch goroutine.
type State struct {
	// ProtectionActive is true while the current discrete gesture is
	// eligible for debounced page flipping. The input router sets it
	// at the start of every wheel tick and clears it at the start of
	// every key-press dispatch cycle.
	ProtectionActive bool

	// LastAxisPrimary remembers whether the previous smart-scroll call
	// moved the primary (reading-order) axis. It decides how large the
	// next secondary-axis fallback step is.
	LastAxisPrimary bool

	// flipDir is the direction of the accumulated flip attempts.
	// Meaningless while flipMagnitude is zero.
	flipDir Direction

	// flipMagnitude counts consecutive scroll attempts absorbed without
	// a flip in flipDir.
	flipMagnitude int
}

// Reset clears all gesture state. Called when the document changes.
func (s *State) Reset() {
	s.ProtectionActive = false
	s.LastAxisPrimary = false
	s.flipDir = 0
	s.flipMagnitude = 0
}

// FlipAttempts returns the number of absorbed flip attempts in the given
// direction. Attempts accumulated in the opposite direction, or left
// over from a gesture whose protection has lapsed, count as zero.
func (s *State) FlipAttempts(dir Direction) int {
	if !s.ProtectionActive || s.flipDir != dir {
		return 0
	}
	return s.flipMagnitude
}

// accumulate records one absorbed flip attempt in dir. Switching
// direction restarts the count at one instead of continuing the old run.
func (s *State) accumulate(dir Direction) {
	if s.flipDir != dir || s.flipMagnitude == 0 {
		s.flipDir = dir
		s.flipMagnitude = 1
		return
	}
	s.flipMagnitude++
}

// clearFlipAttempts zeroes the accumulated flip attempts. Called when a
// flip actually happens, when debounced flipping is disabled, and when a
// plain scroll succeeds without reaching an edge.
func (s *State) clearFlipAttempts() {
	s.flipDir = 0
	s.flipMagnitude = 0
}

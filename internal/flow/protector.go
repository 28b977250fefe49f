package flow

import "fmt"

// Protector is the page-flip debounce. It decides, for a stream of
// scroll attempts that ran out of room, when an attempt should actually
// flip the page and when it should merely be absorbed. This is what
// keeps a single fast wheel burst or a key auto-repeat from skipping
// several pages at once.
type Protector struct {
	// Enabled allows scroll gestures to flip pages at all. When false
	// every attempt is refused and the accumulated count is discarded.
	Enabled bool

	// Threshold is the number of consecutive same-direction attempts
	// required before a protected flip goes through. Must be >= 1.
	Threshold int
}

// Attempt processes one flip attempt in the given direction against the
// current gesture state. It reports whether the page should flip now.
// The caller performs the actual flip.
//
// A flip is approved immediately when protection is not active for the
// current gesture, when enough attempts have accumulated, or when the
// viewport has no vertical scroll room to absorb the gesture anyway.
// Otherwise the attempt is absorbed into the accumulator.
func (p Protector) Attempt(dir Direction, st *State, verticallyScrollable bool) bool {
	if p.Threshold < 1 {
		// Validated at configuration load; reaching this is a
		// programmer error that would desynchronize the accumulator.
		panic(fmt.Sprintf("flow: invalid flip threshold %d", p.Threshold))
	}

	if !p.Enabled {
		st.clearFlipAttempts()
		return false
	}

	if !st.ProtectionActive ||
		st.FlipAttempts(dir) >= p.Threshold-1 ||
		!verticallyScrollable {
		st.clearFlipAttempts()
		return true
	}

	st.accumulate(dir)
	return false
}

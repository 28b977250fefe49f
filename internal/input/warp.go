package input

// Default warp margins. A cursor within WarpTolerance pixels of a
// screen edge is teleported near the opposite edge, overshooting inward
// by WarpExtra pixels so the new position cannot immediately re-trigger
// a warp on the same axis.
const (
	WarpTolerance = 3
	WarpExtra     = 2
)

// Warp maps a drag-cursor coordinate to its wrapped position for the
// axis bounded by [min, max]. The overshoot past the near edge is
// mirrored at the far edge, keeping drag deltas continuous across the
// wrap. Coordinates outside the warp margins are returned unchanged.
func Warp(cur, max, min, tolerance, extra float64) float64 {
	if cur < min+tolerance {
		overmove := min + tolerance - cur
		return max - tolerance - overmove - extra
	}
	if max-cur < tolerance {
		overmove := tolerance - (max - cur)
		return min + tolerance + overmove + extra
	}
	return cur
}

// WarpPoint applies Warp to both axes of a pointer position against a
// screen of the given size.
func WarpPoint(x, y, w, h float64) (float64, float64) {
	return Warp(x, w, 0, WarpTolerance, WarpExtra),
		Warp(y, h, 0, WarpTolerance, WarpExtra)
}

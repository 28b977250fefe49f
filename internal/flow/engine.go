package flow

import "sync"

// Engine executes scroll requests against a Viewport, falling back to
// debounced page flips when the viewport runs out of room. One engine
// exists per viewer window; all scroll paths (keys, wheel, smart
// scroll) go through it so they share a single gesture state.
type Engine struct {
	mu    sync.RWMutex
	vp    Viewport
	prefs Prefs
	state State
}

// NewEngine creates an engine driving the given viewport.
func NewEngine(vp Viewport, prefs Prefs) *Engine {
	return &Engine{vp: vp, prefs: prefs}
}

// SetPrefs replaces the preference snapshot. Called on config reload.
func (e *Engine) SetPrefs(p Prefs) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prefs = p
}

// Prefs returns the current preference snapshot.
func (e *Engine) Prefs() Prefs {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.prefs
}

// State returns the mutable gesture state. The input router flips
// ProtectionActive on it at gesture boundaries.
func (e *Engine) State() *State {
	return &e.state
}

// Reset clears the gesture state. Called when the document changes.
func (e *Engine) Reset() {
	e.state.Reset()
}

// protector builds the flip debounce from the current preferences.
func (e *Engine) protector() Protector {
	p := e.Prefs()
	return Protector{Enabled: p.FlipWithWheel, Threshold: p.PressesBeforeTurn}
}

// flip requests a protected page flip and performs it when approved.
// It reports whether a page was actually flipped.
func (e *Engine) flip(dir Direction) bool {
	if !e.protector().Attempt(dir, &e.state, e.vp.IsScrollableVertically()) {
		return false
	}
	if dir == Forward {
		e.vp.NextPage()
	} else {
		e.vp.PreviousPage()
	}
	return true
}

// FlipPage requests a protected flip directly, without a preceding
// scroll attempt. Used for gestures that mean "turn the page" on their
// own, like a horizontal wheel tick against the reading order.
func (e *Engine) FlipPage(dir Direction) bool {
	return e.flip(dir)
}

// ScrollWithFlipping handles plain arrow-key and wheel scrolling, where
// running out of room may flip the page. It reports whether it scrolled
// without flipping; false means a flip was requested (though the
// protector may still have absorbed it).
func (e *Engine) ScrollWithFlipping(dx, dy int) bool {
	e.state.ProtectionActive = true
	e.state.LastAxisPrimary = false

	if e.vp.Scroll(dx, dy, ScopeView) {
		e.state.clearFlipAttempts()
		return true
	}

	manga := e.vp.IsMangaMode()
	forward := dy > 0 || (manga && dx < 0) || (!manga && dx > 0)
	if forward {
		return !e.flip(Forward)
	}
	return !e.flip(Backward)
}

// SmartScroll performs one reading-flow step in the given direction.
// smallStep is an explicit pixel step from a wheel tick; zero or
// negative means no explicit step was supplied and the configured
// screen fraction is used.
//
// The primary (reading-order) axis is attempted first, scoped to the
// relevant page of a displayed pair. On refusal the secondary axis
// moves instead: by the large step when the previous call's primary
// attempt succeeded, by the small step when it had already failed,
// producing a slow creep across the row and a full jump down to the
// next one. When the secondary axis is also exhausted the engine
// crosses to the other page of the pair if the plan allows it, and
// otherwise requests a protected page flip.
func (e *Engine) SmartScroll(dir Direction, smallStep int) {
	p := e.Prefs()
	w, h := e.vp.VisibleAreaSize()
	st := computeSteps(w, h, p, smallStep)

	if !p.SmartScroll {
		if !e.vp.Scroll(0, int(dir)*st.ySmall, ScopeView) {
			e.flip(dir)
		}
		return
	}

	l := layout{
		double:  e.vp.DisplayedDouble(),
		onFirst: e.vp.IsOnFirstPage(),
		manga:   e.vp.IsMangaMode(),
	}
	plan := planScroll(l, p, st, dir)

	// The previous call's outcome sizes this call's fallback; this
	// call's outcome is recorded for the next one.
	lastPrimary := e.state.LastAxisPrimary
	e.state.LastAxisPrimary = e.vp.Scroll(plan.primaryDX, plan.primaryDY, plan.scope)
	if e.state.LastAxisPrimary {
		return
	}

	fbDX, fbDY := plan.fbSmallDX, plan.fbSmallDY
	if lastPrimary {
		fbDX, fbDY = plan.fbLargeDX, plan.fbLargeDY
	}

	if e.vp.Scroll(fbDX, fbDY, ScopeView) {
		e.vp.ScrollToFixed(plan.rowSnap.horiz, plan.rowSnap.vert)
		return
	}

	if plan.preFlip != nil && e.vp.ScrollToFixed(plan.preFlip.horiz, plan.preFlip.vert) {
		e.vp.ScrollToFixed(plan.preFlipFollow.horiz, plan.preFlipFollow.vert)
		return
	}

	e.flip(dir)
}

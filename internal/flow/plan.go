package flow

// Prefs holds the scroll preferences the engine consumes. A snapshot is
// passed in at construction and replaced wholesale on configuration
// reload; the engine never reaches into a global settings store.
type Prefs struct {
	// SmartScroll enables the reading-flow heuristic. When false,
	// smart-scroll requests degrade to plain vertical scrolling.
	SmartScroll bool

	// InvertSmart swaps the smart-scroll axes so the secondary axis is
	// walked first.
	InvertSmart bool

	// SmartPercentage is the fraction of the visible size moved per
	// smart-scroll step, in (0, 1].
	SmartPercentage float64

	// FlipWithWheel allows scroll gestures to flip pages.
	FlipWithWheel bool

	// PressesBeforeTurn is the debounce threshold for protected flips.
	PressesBeforeTurn int

	// WheelScrollPixels is the step for one mouse-wheel tick.
	WheelScrollPixels int

	// KeyScrollPixels is the step for one arrow-key scroll event.
	KeyScrollPixels int

	// WrapMouseScroll wraps the cursor around the screen during drag
	// scrolling. Consumed by the input router, not the engine.
	WrapMouseScroll bool
}

// DefaultPrefs returns the built-in scroll preferences.
func DefaultPrefs() Prefs {
	return Prefs{
		SmartScroll:       true,
		InvertSmart:       false,
		SmartPercentage:   0.5,
		FlipWithWheel:     true,
		PressesBeforeTurn: 3,
		WheelScrollPixels: 50,
		KeyScrollPixels:   50,
		WrapMouseScroll:   false,
	}
}

// steps holds the per-axis step sizes for one smart-scroll call, fully
// signed: under manga reading order the horizontal values are negative
// so that "forward" moves leftward across the page.
type steps struct {
	xSmall, ySmall int
	xLarge, yLarge int
}

// computeSteps derives the step sizes from the visible area. smallStep
// is an explicit pixel step (from a wheel tick); zero or negative means
// none was supplied and the configured screen fraction is used for both
// step sizes. With an explicit step the invert preference swaps the
// small steps of the two axes; the large steps stay per-axis.
func computeSteps(w, h int, p Prefs, smallStep int) steps {
	var st steps
	if smallStep <= 0 {
		st.xSmall = int(float64(w) * p.SmartPercentage)
		st.ySmall = int(float64(h) * p.SmartPercentage)
		st.xLarge = st.xSmall
		st.yLarge = st.ySmall
	} else {
		st.xSmall = smallStep
		st.ySmall = smallStep
		st.xLarge = int(float64(w) * p.SmartPercentage)
		st.yLarge = int(float64(h) * p.SmartPercentage)
		if p.InvertSmart {
			st.xSmall, st.ySmall = st.ySmall, st.xSmall
		}
	}
	return st
}

// snap is a pair of anchors applied in one ScrollToFixed call.
type snap struct {
	horiz HorizAnchor
	vert  VertAnchor
}

// layout captures the viewport facts the planner branches on.
type layout struct {
	double  bool
	onFirst bool
	manga   bool
}

// axisPlan is the per-call scroll plan: which axis moves first, how the
// fallback behaves, and where the viewport lands afterwards. All deltas
// are fully signed; the stepping loop in the engine is direction- and
// layout-agnostic.
type axisPlan struct {
	// Primary-axis attempt.
	primaryDX, primaryDY int
	scope                Scope

	// Secondary-axis fallback deltas. Which of the two applies depends
	// on whether the previous call's primary attempt succeeded.
	fbSmallDX, fbSmallDY int
	fbLargeDX, fbLargeDY int

	// rowSnap is applied when the fallback succeeds, landing the
	// primary axis at the start (or end) of the new row.
	rowSnap snap

	// preFlip, when set, is tried after the fallback fails, before
	// giving up and flipping: crossing from the first page of a pair to
	// the second (or back) without leaving the spread.
	preFlip *snap

	// preFlipFollow is applied after a successful preFlip snap.
	preFlipFollow snap
}

// planScroll builds the axis plan for one smart-scroll call. The
// branch explosion of layout x reading order x inversion is confined
// here; the engine executes the resulting plan without further
// direction-specific branches.
func planScroll(l layout, p Prefs, st steps, dir Direction) axisPlan {
	d := int(dir)
	manga := l.manga
	xSmall, xLarge := st.xSmall, st.xLarge
	if manga {
		xSmall, xLarge = -xSmall, -xLarge
	}

	var plan axisPlan

	switch {
	case l.double && l.onFirst:
		plan.primaryDX, plan.primaryDY = d*xSmall, 0
		plan.scope = ScopeFirst
		plan.fbSmallDX, plan.fbSmallDY = 0, d*st.ySmall
		plan.fbLargeDX, plan.fbLargeDY = 0, d*st.yLarge
		if dir == Forward {
			plan.rowSnap = snap{horiz: HorizStartFirst}
			plan.preFlip = &snap{horiz: HorizStartSecond}
			plan.preFlipFollow = snap{vert: VertTop}
		} else {
			plan.rowSnap = snap{horiz: HorizEndFirst}
		}

	case l.double && !l.onFirst:
		plan.primaryDX, plan.primaryDY = d*xSmall, 0
		plan.scope = ScopeSecond
		plan.fbSmallDX, plan.fbSmallDY = 0, d*st.ySmall
		plan.fbLargeDX, plan.fbLargeDY = 0, d*st.yLarge
		if dir == Forward {
			plan.rowSnap = snap{horiz: HorizStartSecond}
		} else {
			plan.rowSnap = snap{horiz: HorizEndSecond}
			plan.preFlip = &snap{horiz: HorizEndFirst}
			plan.preFlipFollow = snap{vert: VertBottom}
		}

	case !p.InvertSmart:
		// Single page: walk the reading-order axis, then drop a row.
		plan.primaryDX, plan.primaryDY = d*xSmall, 0
		plan.scope = ScopeView
		plan.fbSmallDX, plan.fbSmallDY = 0, d*st.ySmall
		plan.fbLargeDX, plan.fbLargeDY = 0, d*st.yLarge
		if dir == Forward {
			plan.rowSnap = snap{horiz: HorizStartFirst}
		} else {
			plan.rowSnap = snap{horiz: HorizEndFirst}
		}

	default:
		// Single page, inverted: walk vertically, then shift a column.
		plan.primaryDX, plan.primaryDY = 0, d*st.ySmall
		plan.scope = ScopeView
		plan.fbSmallDX, plan.fbSmallDY = d*xSmall, 0
		plan.fbLargeDX, plan.fbLargeDY = d*xLarge, 0
		if dir == Forward {
			plan.rowSnap = snap{horiz: HorizStartSecond, vert: VertTop}
		} else {
			plan.rowSnap = snap{horiz: HorizStartFirst, vert: VertBottom}
		}
	}

	return plan
}

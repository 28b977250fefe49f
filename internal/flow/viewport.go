package flow

// Direction is the reading-order direction of a scroll or flip attempt.
type Direction int8

const (
	// Forward moves toward the next page in reading order.
	Forward Direction = 1

	// Backward moves toward the previous page in reading order.
	Backward Direction = -1
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return -d
}

// Scope selects which part of the displayed layout a scroll applies to.
type Scope uint8

const (
	// ScopeView scrolls the whole displayed area.
	ScopeView Scope = iota

	// ScopeFirst restricts horizontal scrolling to the first page of a
	// displayed pair, in reading order.
	ScopeFirst

	// ScopeSecond restricts horizontal scrolling to the second page of a
	// displayed pair, in reading order.
	ScopeSecond
)

// String returns a string representation of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeFirst:
		return "first"
	case ScopeSecond:
		return "second"
	default:
		return "view"
	}
}

// HorizAnchor names a horizontal position the viewport can snap to.
type HorizAnchor uint8

const (
	// HorizNone leaves the horizontal position unchanged.
	HorizNone HorizAnchor = iota

	// HorizLeft snaps to the left edge of the displayed area.
	HorizLeft

	// HorizMiddle centers horizontally.
	HorizMiddle

	// HorizRight snaps to the right edge of the displayed area.
	HorizRight

	// HorizStartFirst snaps to the reading-order start of the first page.
	HorizStartFirst

	// HorizEndFirst snaps to the reading-order end of the first page.
	HorizEndFirst

	// HorizStartSecond snaps to the reading-order start of the second page.
	HorizStartSecond

	// HorizEndSecond snaps to the reading-order end of the second page.
	HorizEndSecond
)

// String returns a string representation of the anchor.
func (a HorizAnchor) String() string {
	switch a {
	case HorizLeft:
		return "left"
	case HorizMiddle:
		return "middle"
	case HorizRight:
		return "right"
	case HorizStartFirst:
		return "startfirst"
	case HorizEndFirst:
		return "endfirst"
	case HorizStartSecond:
		return "startsecond"
	case HorizEndSecond:
		return "endsecond"
	default:
		return "none"
	}
}

// ParseHorizAnchor parses an anchor name as used in keymap arguments.
func ParseHorizAnchor(s string) HorizAnchor {
	switch s {
	case "left":
		return HorizLeft
	case "middle":
		return HorizMiddle
	case "right":
		return HorizRight
	case "startfirst":
		return HorizStartFirst
	case "endfirst":
		return HorizEndFirst
	case "startsecond":
		return HorizStartSecond
	case "endsecond":
		return HorizEndSecond
	default:
		return HorizNone
	}
}

// VertAnchor names a vertical position the viewport can snap to.
type VertAnchor uint8

const (
	// VertNone leaves the vertical position unchanged.
	VertNone VertAnchor = iota

	// VertTop snaps to the top edge.
	VertTop

	// VertMiddle centers vertically.
	VertMiddle

	// VertBottom snaps to the bottom edge.
	VertBottom
)

// String returns a string representation of the anchor.
func (a VertAnchor) String() string {
	switch a {
	case VertTop:
		return "top"
	case VertMiddle:
		return "middle"
	case VertBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseVertAnchor parses an anchor name as used in keymap arguments.
func ParseVertAnchor(s string) VertAnchor {
	switch s {
	case "top":
		return VertTop
	case "middle":
		return VertMiddle
	case "bottom":
		return VertBottom
	default:
		return VertNone
	}
}

// Viewport is the engine's view of the display surface. All failure
// modes are expected control states and are reported as booleans, never
// as errors.
type Viewport interface {
	// Scroll moves the viewport by the given pixel delta, optionally
	// scoped to one page of a displayed pair. It reports whether the
	// full delta was applied; false means the viewport was clamped at
	// an edge.
	Scroll(dx, dy int, scope Scope) bool

	// ScrollToFixed snaps the viewport to named anchors. Either anchor
	// may be None to leave that axis unchanged. It reports whether the
	// requested anchors exist in the current layout.
	ScrollToFixed(horiz HorizAnchor, vert VertAnchor) bool

	// DisplayedDouble reports whether a side-by-side page pair is shown.
	DisplayedDouble() bool

	// IsOnFirstPage reports whether the first page of a displayed pair,
	// in reading order, is the current navigation anchor.
	IsOnFirstPage() bool

	// IsMangaMode reports whether right-to-left reading order is active.
	IsMangaMode() bool

	// VisibleAreaSize returns the visible area size in pixels.
	VisibleAreaSize() (w, h int)

	// IsScrollableVertically reports whether the displayed content
	// exceeds the visible height.
	IsScrollableVertically() bool

	// NextPage advances to the next page unconditionally.
	NextPage()

	// PreviousPage goes back to the previous page unconditionally.
	PreviousPage()
}

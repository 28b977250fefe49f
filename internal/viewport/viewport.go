package viewport

import (
	"image"
	"sync"

	"github.com/dshills/riffle/internal/flow"
)

// pageGap is the horizontal spacing between the pages of a spread, in
// pixels.
const pageGap = 2

// Turner flips the underlying document. The view calls it for the
// unconditional page turns and picks up the new layout on the next
// SetPages call.
type Turner interface {
	Next()
	Previous()
}

// View is the scrollable window onto the displayed pages. Offsets are
// in content pixels with the origin at the top-left of the layout,
// regardless of reading order; the reading-order translation happens in
// the anchor and scope calculations.
type View struct {
	mu sync.RWMutex

	turner Turner

	// pages holds the displayed page sizes in reading order (one or two).
	pages []image.Point

	// manga is true under right-to-left reading order. The first page of
	// a pair is then laid out on the right.
	manga bool

	// Visible area size in pixels.
	visW, visH int

	// Scroll offset: the content coordinate of the visible top-left.
	offX, offY int
}

// New creates a view of the given visible size, flipping pages through
// the given turner.
func New(w, h int, turner Turner) *View {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &View{turner: turner, visW: w, visH: h}
}

// SetPages replaces the displayed layout. sizes are the page pixel
// sizes in reading order; one entry for a single page, two for a
// spread. The offsets snap to the reading-order start of the new
// layout.
func (v *View) SetPages(manga bool, sizes ...image.Point) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pages = append(v.pages[:0], sizes...)
	v.manga = manga
	v.snapToStart()
}

// SetVisibleAreaSize updates the visible size, reclamping the offsets.
func (v *View) SetVisibleAreaSize(w, h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	v.visW, v.visH = w, h
	v.offX = clamp(v.offX, 0, v.contentWidth()-v.visW)
	v.offY = clamp(v.offY, 0, v.contentHeight()-v.visH)
}

// VisibleAreaSize returns the visible area size in pixels.
func (v *View) VisibleAreaSize() (int, int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.visW, v.visH
}

// Offset returns the current scroll offset.
func (v *View) Offset() (int, int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.offX, v.offY
}

// PageRects returns the layout rectangle of each displayed page in
// content coordinates, in reading order. The renderer subtracts the
// scroll offset to place them on screen.
func (v *View) PageRects() []image.Rectangle {
	v.mu.RLock()
	defer v.mu.RUnlock()

	rects := make([]image.Rectangle, len(v.pages))
	for i, p := range v.pages {
		x0, x1 := v.pageSpan(i)
		rects[i] = image.Rect(x0, 0, x1, p.Y)
	}
	return rects
}

// DisplayedDouble reports whether a side-by-side pair is shown.
func (v *View) DisplayedDouble() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.pages) == 2
}

// IsMangaMode reports whether right-to-left reading order is active.
func (v *View) IsMangaMode() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.manga
}

// IsOnFirstPage reports whether the center of the visible area is over
// the first page of the displayed pair, in reading order. With a single
// page it is always true.
func (v *View) IsOnFirstPage() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if len(v.pages) < 2 {
		return true
	}
	x0, x1 := v.pageSpan(0)
	center := v.offX + v.visW/2
	return center >= x0 && center < x1
}

// IsScrollableVertically reports whether the layout is taller than the
// visible area.
func (v *View) IsScrollableVertically() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.contentHeight() > v.visH
}

// Scroll moves the view by the given delta, clamped to the layout.
// Scoping to one page of a pair restricts the horizontal travel to that
// page's span. It reports whether the full delta was applied; a clamped
// move reports false, which is how the scroll engine detects edges.
func (v *View) Scroll(dx, dy int, scope flow.Scope) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	loX, hiX := 0, v.contentWidth()-v.visW
	if scope != flow.ScopeView {
		idx := v.scopeIndex(scope)
		if idx >= len(v.pages) {
			return false
		}
		x0, x1 := v.pageSpan(idx)
		loX, hiX = x0, x1-v.visW
		if hiX < loX {
			// Page narrower than the view: no horizontal travel at all.
			loX, hiX = v.offX, v.offX
		}
	}

	newX := clamp(v.offX+dx, loX, hiX)
	newY := clamp(v.offY+dy, 0, v.contentHeight()-v.visH)

	full := newX-v.offX == dx && newY-v.offY == dy
	v.offX, v.offY = newX, newY
	return full
}

// ScrollToFixed snaps the view to the named anchors. Either anchor may
// be None to leave that axis alone. It reports whether the requested
// anchors exist in the current layout; asking for a second-page anchor
// of a single page fails without moving, which the scroll engine uses
// to detect that there is no page to cross to.
func (v *View) ScrollToFixed(horiz flow.HorizAnchor, vert flow.VertAnchor) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	newX, ok := v.anchorX(horiz)
	if !ok {
		return false
	}

	switch vert {
	case flow.VertTop:
		v.offY = 0
	case flow.VertMiddle:
		v.offY = clamp((v.contentHeight()-v.visH)/2, 0, v.contentHeight()-v.visH)
	case flow.VertBottom:
		v.offY = clamp(v.contentHeight()-v.visH, 0, v.contentHeight()-v.visH)
	}

	v.offX = newX
	return true
}

// NextPage advances to the next page unconditionally.
func (v *View) NextPage() {
	v.mu.Lock()
	turner := v.turner
	v.snapToStart()
	v.mu.Unlock()

	if turner != nil {
		turner.Next()
	}
}

// PreviousPage goes back to the previous page unconditionally.
func (v *View) PreviousPage() {
	v.mu.Lock()
	turner := v.turner
	v.snapToStart()
	v.mu.Unlock()

	if turner != nil {
		turner.Previous()
	}
}

// anchorX resolves a horizontal anchor to an offset. The second return
// is false when the anchor names a page the layout does not have.
func (v *View) anchorX(a flow.HorizAnchor) (int, bool) {
	maxX := v.contentWidth() - v.visW

	switch a {
	case flow.HorizNone:
		return v.offX, true
	case flow.HorizLeft:
		return 0, true
	case flow.HorizMiddle:
		return clamp(maxX/2, 0, maxX), true
	case flow.HorizRight:
		return clamp(maxX, 0, maxX), true
	}

	idx := 0
	if a == flow.HorizStartSecond || a == flow.HorizEndSecond {
		idx = 1
	}
	if idx >= len(v.pages) {
		return v.offX, false
	}

	x0, x1 := v.pageSpan(idx)
	start := a == flow.HorizStartFirst || a == flow.HorizStartSecond
	// Reading-order start is the left edge in western order and the
	// right edge under manga.
	if start != v.manga {
		return clamp(x0, 0, maxX), true
	}
	return clamp(x1-v.visW, 0, maxX), true
}

// scopeIndex maps a scroll scope to the layout index of its page,
// which is the reading-order index regardless of where manga layout
// placed it.
func (v *View) scopeIndex(s flow.Scope) int {
	if s == flow.ScopeSecond {
		return 1
	}
	return 0
}

// pageSpan returns the horizontal extent [x0, x1) of the page with the
// given reading-order index. Manga layout places the reading-order
// first page on the right.
func (v *View) pageSpan(idx int) (int, int) {
	if len(v.pages) < 2 {
		if len(v.pages) == 0 {
			return 0, 0
		}
		return 0, v.pages[0].X
	}

	leftIdx := 0
	if v.manga {
		leftIdx = 1
	}
	leftW := v.pages[leftIdx].X

	if idx == leftIdx {
		return 0, leftW
	}
	return leftW + pageGap, leftW + pageGap + v.pages[1-leftIdx].X
}

// contentWidth returns the total layout width.
func (v *View) contentWidth() int {
	switch len(v.pages) {
	case 0:
		return 0
	case 1:
		return v.pages[0].X
	default:
		return v.pages[0].X + pageGap + v.pages[1].X
	}
}

// contentHeight returns the total layout height.
func (v *View) contentHeight() int {
	h := 0
	for _, p := range v.pages {
		if p.Y > h {
			h = p.Y
		}
	}
	return h
}

// snapToStart puts the view at the reading-order start of the layout:
// top edge, and the start-of-first-page anchor horizontally.
func (v *View) snapToStart() {
	v.offY = 0
	if x, ok := v.anchorX(flow.HorizStartFirst); ok {
		v.offX = x
	} else {
		v.offX = 0
	}
}

// clamp bounds n to [lo, hi]. A hi below lo collapses to lo.
func clamp(n, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

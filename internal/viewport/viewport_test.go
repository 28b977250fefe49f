package viewport

import (
	"image"
	"testing"

	"github.com/dshills/riffle/internal/flow"
)

type fakeTurner struct {
	nexts, prevs int
}

func (t *fakeTurner) Next()     { t.nexts++ }
func (t *fakeTurner) Previous() { t.prevs++ }

func single(v *View, w, h int) {
	v.SetPages(false, image.Pt(w, h))
}

func TestScrollClampsAtEdges(t *testing.T) {
	v := New(800, 600, nil)
	single(v, 1600, 1200)

	if !v.Scroll(400, 300, flow.ScopeView) {
		t.Fatal("scroll inside the layout should apply fully")
	}
	if x, y := v.Offset(); x != 400 || y != 300 {
		t.Fatalf("offset = (%d, %d), want (400, 300)", x, y)
	}

	// 800 remaining horizontally minus the 800 view leaves 400.
	if v.Scroll(500, 0, flow.ScopeView) {
		t.Error("clamped scroll should report false")
	}
	if x, _ := v.Offset(); x != 800 {
		t.Errorf("offset x = %d, want clamped to 800", x)
	}

	if v.Scroll(1, 0, flow.ScopeView) {
		t.Error("scroll at the edge should report false")
	}
}

func TestScrollSmallerThanView(t *testing.T) {
	v := New(800, 600, nil)
	single(v, 400, 300)

	if v.Scroll(10, 0, flow.ScopeView) {
		t.Error("nothing to scroll, should report false")
	}
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("offset = (%d, %d), want origin", x, y)
	}
	if v.IsScrollableVertically() {
		t.Error("content shorter than view is not vertically scrollable")
	}
}

func TestScopedScrollStaysOnPage(t *testing.T) {
	v := New(300, 600, nil)
	v.SetPages(false, image.Pt(1000, 600), image.Pt(1000, 600))

	// The first page spans [0, 1000); a view of 300 can travel to 700
	// within it.
	if !v.Scroll(700, 0, flow.ScopeFirst) {
		t.Fatal("travel within the first page should apply fully")
	}
	if v.Scroll(10, 0, flow.ScopeFirst) {
		t.Error("scoped scroll must stop at the page boundary")
	}
	if x, _ := v.Offset(); x != 700 {
		t.Errorf("offset x = %d, want 700", x)
	}

	// Unscoped scrolling crosses the gap freely.
	if !v.Scroll(10, 0, flow.ScopeView) {
		t.Error("unscoped scroll should cross the page boundary")
	}
}

func TestScopedScrollOnMissingPage(t *testing.T) {
	v := New(300, 600, nil)
	single(v, 1000, 600)

	if v.Scroll(10, 0, flow.ScopeSecond) {
		t.Error("scoping to an absent page should fail")
	}
}

func TestAnchors(t *testing.T) {
	v := New(300, 400, nil)
	v.SetPages(false, image.Pt(1000, 800), image.Pt(500, 800))

	tests := []struct {
		name  string
		horiz flow.HorizAnchor
		vert  flow.VertAnchor
		wantX int
		wantY int
	}{
		{"left top", flow.HorizLeft, flow.VertTop, 0, 0},
		{"right bottom", flow.HorizRight, flow.VertBottom, 1202, 400},
		{"middle middle", flow.HorizMiddle, flow.VertMiddle, 601, 200},
		{"start of first", flow.HorizStartFirst, flow.VertNone, 0, 0},
		{"end of first", flow.HorizEndFirst, flow.VertNone, 700, 0},
		{"start of second", flow.HorizStartSecond, flow.VertNone, 1002, 0},
		{"end of second", flow.HorizEndSecond, flow.VertNone, 1202, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.ScrollToFixed(flow.HorizLeft, flow.VertTop)
			if !v.ScrollToFixed(tt.horiz, tt.vert) {
				t.Fatal("anchor should exist")
			}
			x, y := v.Offset()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("offset = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSecondPageAnchorAbsent(t *testing.T) {
	v := New(300, 400, nil)
	single(v, 1000, 800)
	v.Scroll(100, 100, flow.ScopeView)

	if v.ScrollToFixed(flow.HorizStartSecond, flow.VertNone) {
		t.Error("second-page anchor must fail on a single page")
	}
	if x, y := v.Offset(); x != 100 || y != 100 {
		t.Errorf("failed snap moved the view to (%d, %d)", x, y)
	}
}

func TestMangaLayoutReversed(t *testing.T) {
	v := New(300, 400, nil)
	// Reading-order first page lands on the right under manga.
	v.SetPages(true, image.Pt(1000, 800), image.Pt(500, 800))

	rects := v.PageRects()
	if rects[0].Min.X != 502 || rects[1].Min.X != 0 {
		t.Fatalf("rects = %v, want first page at x=502", rects)
	}

	// Start of first page is its right edge under manga. SetPages
	// already snapped there.
	if x, _ := v.Offset(); x != 1202 {
		t.Errorf("offset x = %d, want snapped to 1202", x)
	}

	v.ScrollToFixed(flow.HorizEndFirst, flow.VertNone)
	if x, _ := v.Offset(); x != 502 {
		t.Errorf("end-of-first x = %d, want 502", x)
	}
	v.ScrollToFixed(flow.HorizStartSecond, flow.VertNone)
	if x, _ := v.Offset(); x != 200 {
		t.Errorf("start-of-second x = %d, want 200 (right edge of left page)", x)
	}
}

func TestIsOnFirstPage(t *testing.T) {
	v := New(300, 400, nil)
	v.SetPages(false, image.Pt(1000, 800), image.Pt(500, 800))

	if !v.IsOnFirstPage() {
		t.Error("view at origin should be on the first page")
	}
	v.ScrollToFixed(flow.HorizStartSecond, flow.VertNone)
	if v.IsOnFirstPage() {
		t.Error("view over the second page should not be on the first")
	}

	single(v, 400, 300)
	if !v.IsOnFirstPage() {
		t.Error("single page is always the first")
	}
}

func TestPageTurnsDelegate(t *testing.T) {
	turner := &fakeTurner{}
	v := New(300, 400, turner)
	single(v, 1000, 800)
	v.Scroll(200, 200, flow.ScopeView)

	v.NextPage()
	if turner.nexts != 1 {
		t.Errorf("nexts = %d, want 1", turner.nexts)
	}
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("offset = (%d, %d) after turn, want start", x, y)
	}

	v.PreviousPage()
	if turner.prevs != 1 {
		t.Errorf("prevs = %d, want 1", turner.prevs)
	}
}

func TestResizeReclamps(t *testing.T) {
	v := New(300, 400, nil)
	single(v, 1000, 800)
	v.ScrollToFixed(flow.HorizRight, flow.VertBottom)

	v.SetVisibleAreaSize(900, 700)
	if x, y := v.Offset(); x != 100 || y != 100 {
		t.Errorf("offset = (%d, %d) after grow, want reclamped (100, 100)", x, y)
	}
}

package flow

import "testing"

func TestComputeSteps(t *testing.T) {
	prefs := func(invert bool) Prefs {
		p := DefaultPrefs()
		p.SmartPercentage = 0.5
		p.InvertSmart = invert
		return p
	}

	tests := []struct {
		name      string
		w, h      int
		invert    bool
		smallStep int
		want      steps
	}{
		{
			name: "derived steps use the screen fraction per axis",
			w:    800, h: 600,
			smallStep: 0,
			want:      steps{xSmall: 400, ySmall: 300, xLarge: 400, yLarge: 300},
		},
		{
			name: "explicit step keeps the large steps derived",
			w:    800, h: 600,
			smallStep: 40,
			want:      steps{xSmall: 40, ySmall: 40, xLarge: 400, yLarge: 300},
		},
		{
			name: "invert leaves equal explicit small steps unchanged",
			w:    800, h: 600,
			invert:    true,
			smallStep: 40,
			want:      steps{xSmall: 40, ySmall: 40, xLarge: 400, yLarge: 300},
		},
		{
			name: "invert with no explicit step leaves derived steps alone",
			w:    1000, h: 400,
			invert:    true,
			smallStep: 0,
			want:      steps{xSmall: 500, ySmall: 200, xLarge: 500, yLarge: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeSteps(tt.w, tt.h, prefs(tt.invert), tt.smallStep)
			if got != tt.want {
				t.Errorf("computeSteps() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlanScrollSinglePage(t *testing.T) {
	p := DefaultPrefs()
	st := steps{xSmall: 400, ySmall: 300, xLarge: 400, yLarge: 300}

	t.Run("forward walks the reading axis then drops a row", func(t *testing.T) {
		plan := planScroll(layout{}, p, st, Forward)
		if plan.primaryDX != 400 || plan.primaryDY != 0 {
			t.Errorf("primary = (%d,%d), want (400,0)", plan.primaryDX, plan.primaryDY)
		}
		if plan.fbSmallDY != 300 || plan.fbSmallDX != 0 {
			t.Errorf("fallback = (%d,%d), want (0,300)", plan.fbSmallDX, plan.fbSmallDY)
		}
		if plan.rowSnap != (snap{horiz: HorizStartFirst}) {
			t.Errorf("rowSnap = %v/%v, want startfirst", plan.rowSnap.horiz, plan.rowSnap.vert)
		}
		if plan.preFlip != nil {
			t.Error("single page plan has a preFlip snap")
		}
	})

	t.Run("backward mirrors the deltas and snaps to the row end", func(t *testing.T) {
		plan := planScroll(layout{}, p, st, Backward)
		if plan.primaryDX != -400 {
			t.Errorf("primaryDX = %d, want -400", plan.primaryDX)
		}
		if plan.fbSmallDY != -300 {
			t.Errorf("fbSmallDY = %d, want -300", plan.fbSmallDY)
		}
		if plan.rowSnap != (snap{horiz: HorizEndFirst}) {
			t.Errorf("rowSnap = %v, want endfirst", plan.rowSnap.horiz)
		}
	})

	t.Run("manga mode flips the primary-axis sign", func(t *testing.T) {
		plan := planScroll(layout{manga: true}, p, st, Forward)
		if plan.primaryDX != -400 {
			t.Errorf("primaryDX = %d, want -400 in manga mode", plan.primaryDX)
		}
	})

	t.Run("inverted walks vertically first", func(t *testing.T) {
		inv := p
		inv.InvertSmart = true
		plan := planScroll(layout{}, inv, st, Forward)
		if plan.primaryDX != 0 || plan.primaryDY != 300 {
			t.Errorf("primary = (%d,%d), want (0,300)", plan.primaryDX, plan.primaryDY)
		}
		if plan.fbSmallDX != 400 || plan.fbSmallDY != 0 {
			t.Errorf("fallback = (%d,%d), want (400,0)", plan.fbSmallDX, plan.fbSmallDY)
		}
	})
}

func TestPlanScrollDoublePage(t *testing.T) {
	p := DefaultPrefs()
	st := steps{xSmall: 400, ySmall: 300, xLarge: 400, yLarge: 300}

	tests := []struct {
		name      string
		l         layout
		dir       Direction
		scope     Scope
		rowSnap   snap
		preFlip   *snap
		follow    snap
		primaryDX int
	}{
		{
			name: "first page forward crosses to the second before flipping",
			l:    layout{double: true, onFirst: true}, dir: Forward,
			scope: ScopeFirst, rowSnap: snap{horiz: HorizStartFirst},
			preFlip: &snap{horiz: HorizStartSecond}, follow: snap{vert: VertTop},
			primaryDX: 400,
		},
		{
			name: "first page backward flips without crossing",
			l:    layout{double: true, onFirst: true}, dir: Backward,
			scope: ScopeFirst, rowSnap: snap{horiz: HorizEndFirst},
			primaryDX: -400,
		},
		{
			name: "second page forward flips without crossing",
			l:    layout{double: true, onFirst: false}, dir: Forward,
			scope: ScopeSecond, rowSnap: snap{horiz: HorizStartSecond},
			primaryDX: 400,
		},
		{
			name: "second page backward crosses back to the first",
			l:    layout{double: true, onFirst: false}, dir: Backward,
			scope: ScopeSecond, rowSnap: snap{horiz: HorizEndSecond},
			preFlip: &snap{horiz: HorizEndFirst}, follow: snap{vert: VertBottom},
			primaryDX: -400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planScroll(tt.l, p, st, tt.dir)
			if plan.scope != tt.scope {
				t.Errorf("scope = %v, want %v", plan.scope, tt.scope)
			}
			if plan.primaryDX != tt.primaryDX {
				t.Errorf("primaryDX = %d, want %d", plan.primaryDX, tt.primaryDX)
			}
			if plan.rowSnap != tt.rowSnap {
				t.Errorf("rowSnap = %+v, want %+v", plan.rowSnap, tt.rowSnap)
			}
			if (plan.preFlip == nil) != (tt.preFlip == nil) {
				t.Fatalf("preFlip = %v, want %v", plan.preFlip, tt.preFlip)
			}
			if tt.preFlip != nil {
				if *plan.preFlip != *tt.preFlip {
					t.Errorf("preFlip = %+v, want %+v", *plan.preFlip, *tt.preFlip)
				}
				if plan.preFlipFollow != tt.follow {
					t.Errorf("preFlipFollow = %+v, want %+v", plan.preFlipFollow, tt.follow)
				}
			}
		})
	}
}

func TestAnchorParsing(t *testing.T) {
	horiz := []HorizAnchor{
		HorizLeft, HorizMiddle, HorizRight,
		HorizStartFirst, HorizEndFirst, HorizStartSecond, HorizEndSecond,
	}
	for _, a := range horiz {
		if got := ParseHorizAnchor(a.String()); got != a {
			t.Errorf("ParseHorizAnchor(%q) = %v, want %v", a.String(), got, a)
		}
	}
	vert := []VertAnchor{VertTop, VertMiddle, VertBottom}
	for _, a := range vert {
		if got := ParseVertAnchor(a.String()); got != a {
			t.Errorf("ParseVertAnchor(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if ParseHorizAnchor("sideways") != HorizNone {
		t.Error("ParseHorizAnchor accepted an unknown name")
	}
}

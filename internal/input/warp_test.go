package input

import "testing"

func TestWarp(t *testing.T) {
	tests := []struct {
		name      string
		cur       float64
		max       float64
		want      float64
	}{
		{"center untouched", 500, 1000, 500},
		{"just inside near margin untouched", 3, 1000, 3},
		{"just inside far margin untouched", 997, 1000, 997},
		{"at min wraps to far edge", 0, 1000, 992},
		{"inside near margin wraps", 2, 1000, 994},
		{"at max wraps to near edge", 1000, 1000, 8},
		{"inside far margin wraps", 998, 1000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Warp(tt.cur, tt.max, 0, WarpTolerance, WarpExtra)
			if got != tt.want {
				t.Errorf("Warp(%v) = %v, want %v", tt.cur, got, tt.want)
			}
		})
	}
}

func TestWarpStaysInBounds(t *testing.T) {
	const max = 1920.0
	for cur := 0.0; cur <= max; cur++ {
		got := Warp(cur, max, 0, WarpTolerance, WarpExtra)
		if got < 0 || got > max {
			t.Fatalf("Warp(%v) = %v escaped [0, %v]", cur, got, max)
		}
	}
}

func TestWarpNeverRetriggers(t *testing.T) {
	// A wrapped position must land outside the warp margins, or the
	// next motion event would wrap straight back.
	const max = 1920.0
	for cur := 0.0; cur <= max; cur++ {
		got := Warp(cur, max, 0, WarpTolerance, WarpExtra)
		if got == cur {
			continue
		}
		again := Warp(got, max, 0, WarpTolerance, WarpExtra)
		if again != got {
			t.Fatalf("Warp(%v) = %v re-wraps to %v", cur, got, again)
		}
	}
}

func TestWarpPoint(t *testing.T) {
	x, y := WarpPoint(1, 300, 1920, 1080)
	if x != 1920-WarpTolerance-2-WarpExtra {
		t.Errorf("x = %v, want %v", x, 1920-WarpTolerance-2-WarpExtra)
	}
	if y != 300 {
		t.Errorf("y = %v, want 300 (untouched)", y)
	}
}

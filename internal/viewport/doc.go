// Package viewport implements the pixel-space view onto the displayed
// page or page pair. It owns the scroll offsets, the side-by-side
// layout of double-page spreads, and the named anchor positions the
// scroll engine snaps to. Manga reading order flips the horizontal
// layout and the meaning of the start/end anchors; callers work in
// reading-order terms and never branch on it themselves.
package viewport

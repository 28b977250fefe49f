// Package input routes raw pointer, wheel, and keyboard events to the
// reading-flow engine and the viewport. It owns the per-session gesture
// state (drag positions, flip debounce activation), the cursor-wrap
// helper for edge-to-edge drag scrolling, and the pending-event queue
// that coalesces bursts of pointer motion.
//
// The router itself holds no page-flow logic: it classifies events,
// activates or deactivates the flip debounce at gesture boundaries, and
// delegates the rest to flow.Engine.
package input

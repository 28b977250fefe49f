// Package flow implements the reading-flow core of the viewer: the
// page-flip debounce protector, the axis-planning logic, and the smart
// scroll engine that walks a one- or two-page layout one screen-fraction
// at a time, following the configured reading order.
//
// The package owns no pixels. It drives a Viewport through a small
// contract (scroll by delta, snap to a named anchor, flip a page) and
// keeps the per-gesture state needed to debounce page flips and to
// alternate between the primary (reading-order) and secondary axes.
package flow

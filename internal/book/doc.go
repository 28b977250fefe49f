// Package book manages the open image sequence: scanning directories
// for supported images, the current position, page stepping in single
// and double page modes, and asynchronous decoding of pages around the
// current position.
package book

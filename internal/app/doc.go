// Package app assembles the viewer: configuration, the open book, the
// viewport, the scroll engine, and the input router, driven by an
// ebiten game loop.
package app

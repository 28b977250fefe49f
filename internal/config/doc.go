// Package config loads and watches the viewer configuration.
//
// Configuration lives in a single TOML file. Values missing from the
// file keep their built-in defaults, so an empty or absent file is a
// valid configuration. Components subscribe for reload notifications
// instead of re-reading settings on every use.
package config

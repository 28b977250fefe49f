// Package main is the entry point for the riffle image viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/riffle/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, showVersion := parseFlags()

	if showVersion {
		fmt.Printf("riffle %s (%s)\n", version, commit)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var logLevel string
	var quiet bool
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&quiet, "q", false, "Disable logging")
	flag.BoolVar(&opts.Watch, "watch", true, "Reload the configuration when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = usage
	flag.Parse()

	if opts.ConfigPath == "" {
		opts.ConfigPath = defaultConfigPath()
	}
	if !quiet {
		opts.Logger = app.NewLogger(app.ParseLogLevel(logLevel), os.Stderr)
	}
	if flag.NArg() > 0 {
		opts.Path = flag.Arg(0)
	}
	return opts, showVersion
}

// defaultConfigPath returns the user configuration file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "riffle", "config.toml")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: riffle [options] [file-or-directory]\n\nOptions:\n")
	flag.PrintDefaults()
}

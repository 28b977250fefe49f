package app

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/riffle/internal/config"
	"github.com/dshills/riffle/internal/input/key"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelWarn, &buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error %d", 42)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("low levels leaked through: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error 42") {
		t.Errorf("missing expected output: %q", out)
	}
	if !strings.Contains(out, "[WARN] riffle:") {
		t.Errorf("missing level and prefix: %q", out)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelInfo, &buf).WithComponent("loader")

	l.Info("hello")
	if !strings.Contains(buf.String(), "component=loader") {
		t.Errorf("missing component field: %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOperationError(t *testing.T) {
	base := errors.New("boom")
	err := NewOperationError("open", "/x/y.png", base)

	if !errors.Is(err, base) {
		t.Error("Unwrap should reach the base error")
	}
	if got := err.Error(); got != "open /x/y.png: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func writePage(t *testing.T, dir, name string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
}

func TestNewWiresConfigIntoComponents(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.png")
	writePage(t, dir, "002.png")

	cfgPath := filepath.Join(dir, "riffle.toml")
	content := `
[scroll]
key_scroll_pixels = 75

[reading]
manga_mode = true
double_page = true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(Options{ConfigPath: cfgPath, Path: dir})
	if err != nil {
		t.Fatal(err)
	}

	if got := a.engine.Prefs().KeyScrollPixels; got != 75 {
		t.Errorf("KeyScrollPixels = %d, want 75", got)
	}
	if !a.book.MangaMode() || !a.book.DoublePage() {
		t.Error("reading settings not applied to the book")
	}
	if a.book.Len() != 2 {
		t.Errorf("Len = %d, want the directory's 2 pages", a.book.Len())
	}
}

func TestApplyConfigUpdatesComponents(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.png")

	a, err := New(Options{ConfigPath: filepath.Join(dir, "none.toml"), Path: dir})
	if err != nil {
		t.Fatal(err)
	}

	f := config.Default()
	f.Scroll.WheelScrollPixels = 99
	f.Reading.MangaMode = true
	a.applyConfig(f)

	if got := a.engine.Prefs().WheelScrollPixels; got != 99 {
		t.Errorf("WheelScrollPixels = %d, want 99", got)
	}
	if !a.book.MangaMode() {
		t.Error("manga mode not applied")
	}
}

func TestUserKeymapFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "riffle.toml")
	content := `
[keymap]
"n" = "page.next"
"Space" = "page.last"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatal(err)
	}

	if b := a.keymaps.Lookup(key.NewRuneEvent('n', key.ModNone)); b == nil || b.Action != "page.next" {
		t.Errorf("Lookup(n) = %v, want user binding page.next", b)
	}
	if b := a.keymaps.Lookup(key.NewEvent(key.KeySpace, key.ModNone)); b == nil || b.Action != "page.last" {
		t.Errorf("Lookup(Space) = %v, want user override page.last", b)
	}

	// A reload with a bad chord rejects the table wholesale; the
	// previous user bindings stay in effect.
	f := config.Default()
	f.Keymap = map[string]string{"Hyper+x": "page.next"}
	a.applyConfig(f)
	if b := a.keymaps.Lookup(key.NewEvent(key.KeySpace, key.ModNone)); b == nil || b.Action != "page.last" {
		t.Errorf("Lookup(Space) after bad reload = %v, want page.last kept", b)
	}

	// A reload without a [keymap] table clears the overrides.
	a.applyConfig(config.Default())
	if b := a.keymaps.Lookup(key.NewEvent(key.KeySpace, key.ModNone)); b == nil || b.Action != "scroll.smartDown" {
		t.Errorf("Lookup(Space) after clearing = %v, want the default restored", b)
	}
}

func TestOpenMissingPath(t *testing.T) {
	a, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	if err != nil {
		t.Fatal(err)
	}

	err = a.Open(filepath.Join(t.TempDir(), "missing.png"))
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Errorf("err = %v, want an open OperationError", err)
	}
}

func TestOSPath(t *testing.T) {
	got := osPath("home/user/a.png")
	if !filepath.IsAbs(got) {
		t.Errorf("osPath = %q, want absolute", got)
	}
}

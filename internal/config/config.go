package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/riffle/internal/flow"
)

// ScrollConfig holds the scroll and page-flip settings.
type ScrollConfig struct {
	// Smart enables the reading-flow scroll heuristic.
	Smart bool `toml:"smart"`

	// InvertSmart walks the secondary axis first.
	InvertSmart bool `toml:"invert_smart"`

	// SmartPercentage is the fraction of the visible size moved per
	// smart-scroll step, in (0, 1].
	SmartPercentage float64 `toml:"smart_percentage"`

	// FlipWithWheel allows scroll gestures to flip pages.
	FlipWithWheel bool `toml:"flip_with_wheel"`

	// PressesBeforeTurn is how many scroll events at a page edge are
	// absorbed before the page flips.
	PressesBeforeTurn int `toml:"presses_before_page_turn"`

	// WheelScrollPixels is the step for one mouse-wheel tick.
	WheelScrollPixels int `toml:"wheel_scroll_pixels"`

	// KeyScrollPixels is the step for one arrow-key scroll event.
	KeyScrollPixels int `toml:"key_scroll_pixels"`

	// WrapMouseScroll wraps the cursor around the screen edges while
	// drag scrolling.
	WrapMouseScroll bool `toml:"wrap_mouse_scroll"`
}

// Prefs converts the section to the snapshot the scroll engine consumes.
func (s ScrollConfig) Prefs() flow.Prefs {
	return flow.Prefs{
		SmartScroll:       s.Smart,
		InvertSmart:       s.InvertSmart,
		SmartPercentage:   s.SmartPercentage,
		FlipWithWheel:     s.FlipWithWheel,
		PressesBeforeTurn: s.PressesBeforeTurn,
		WheelScrollPixels: s.WheelScrollPixels,
		KeyScrollPixels:   s.KeyScrollPixels,
		WrapMouseScroll:   s.WrapMouseScroll,
	}
}

// UIConfig holds the window settings.
type UIConfig struct {
	// EscapeQuits makes Escape quit the viewer instead of leaving
	// fullscreen.
	EscapeQuits bool `toml:"escape_quits"`

	// Fullscreen starts the viewer in fullscreen.
	Fullscreen bool `toml:"fullscreen"`
}

// ReadingConfig holds the page layout settings.
type ReadingConfig struct {
	// MangaMode reads right to left.
	MangaMode bool `toml:"manga_mode"`

	// DoublePage shows two pages side by side.
	DoublePage bool `toml:"double_page"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	// Level is the minimum level written ("debug", "info", "warn",
	// "error").
	Level string `toml:"level"`
}

// File is the full configuration schema.
type File struct {
	Scroll  ScrollConfig  `toml:"scroll"`
	UI      UIConfig      `toml:"ui"`
	Reading ReadingConfig `toml:"reading"`
	Log     LogConfig     `toml:"log"`

	// Keymap maps key chords to action names, e.g. "n" = "page.next".
	// Entries shadow the built-in bindings. Chord syntax is checked when
	// the keymap is registered, not here.
	Keymap map[string]string `toml:"keymap"`
}

// Default returns the built-in configuration.
func Default() File {
	return File{
		Scroll: ScrollConfig{
			Smart:             true,
			InvertSmart:       false,
			SmartPercentage:   0.5,
			FlipWithWheel:     true,
			PressesBeforeTurn: 3,
			WheelScrollPixels: 50,
			KeyScrollPixels:   50,
			WrapMouseScroll:   false,
		},
		UI: UIConfig{
			EscapeQuits: false,
			Fullscreen:  false,
		},
		Reading: ReadingConfig{
			MangaMode:  false,
			DoublePage: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the file at path on top of the defaults. A missing file is
// not an error; the defaults apply unchanged.
func Load(path string) (File, error) {
	f := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &f); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Validate checks the value ranges.
func (f File) Validate() error {
	if f.Scroll.SmartPercentage <= 0 || f.Scroll.SmartPercentage > 1 {
		return fmt.Errorf("scroll.smart_percentage %v outside (0, 1]", f.Scroll.SmartPercentage)
	}
	if f.Scroll.PressesBeforeTurn < 1 {
		return fmt.Errorf("scroll.presses_before_page_turn %d below 1", f.Scroll.PressesBeforeTurn)
	}
	if f.Scroll.WheelScrollPixels < 1 {
		return fmt.Errorf("scroll.wheel_scroll_pixels %d below 1", f.Scroll.WheelScrollPixels)
	}
	if f.Scroll.KeyScrollPixels < 1 {
		return fmt.Errorf("scroll.key_scroll_pixels %d below 1", f.Scroll.KeyScrollPixels)
	}
	return nil
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "[scroll]\nkey_scroll_pixels = 10\n")
	m, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan File, 1)
	m.Subscribe(func(f File) {
		select {
		case reloaded <- f:
		default:
		}
	})

	w, err := NewWatcher(m, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[scroll]\nkey_scroll_pixels = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-reloaded:
		if f.Scroll.KeyScrollPixels != 30 {
			t.Errorf("KeyScrollPixels = %d, want 30", f.Scroll.KeyScrollPixels)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the file changed")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeConfig(t, "[scroll]\nkey_scroll_pixels = 10\n")
	m, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan File, 1)
	m.Subscribe(func(f File) {
		select {
		case reloaded <- f:
		default:
		}
	})

	w, err := NewWatcher(m, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	other := path + ".bak"
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Fatal("reloaded on an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

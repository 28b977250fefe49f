package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the event bursts editors produce when
// saving a file.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the manager's configuration when the file changes on
// disk. It watches the containing directory rather than the file, so
// the save-by-rename trick most editors use still lands a reload.
type Watcher struct {
	manager *Manager
	fsw     *fsnotify.Watcher

	// onError receives reload failures; nil drops them.
	onError func(error)

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching the manager's configuration file. The
// onError callback receives reload and watch failures and may be nil.
func NewWatcher(m *Manager, onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(m.Path())
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		manager: m,
		fsw:     fsw,
		onError: onError,
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.fsw.Close()
		w.wg.Wait()
	})
}

// run is the event loop. Events for other files in the directory are
// ignored; matching events are debounced before reloading.
func (w *Watcher) run() {
	defer w.wg.Done()

	target := filepath.Clean(w.manager.Path())
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(reloadDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.manager.Reload(); err != nil && w.onError != nil {
				w.onError(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

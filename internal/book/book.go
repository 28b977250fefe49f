package book

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoImages indicates the opened path contained no supported images.
var ErrNoImages = errors.New("no supported images")

// Page is one image of the sequence.
type Page struct {
	Path string
}

// Book is the open image sequence and the current position in it.
type Book struct {
	mu sync.RWMutex

	pages []Page
	index int

	// doublePage shows two pages side by side where possible.
	doublePage bool

	// manga reverses the reading order of a displayed pair.
	manga bool

	// forceSingleStep makes page turns move one page even in double
	// page mode. Latched while Ctrl is held.
	forceSingleStep bool
}

// New creates an empty book.
func New() *Book {
	return &Book{}
}

// Open replaces the book contents. A directory path opens all supported
// images inside it; a file path opens its containing directory
// positioned at that file. Only the first path decides the sequence.
func (b *Book) Open(paths ...string) error {
	if len(paths) == 0 {
		return ErrNoImages
	}
	target := paths[0]

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}

	dir := target
	start := ""
	if !info.IsDir() {
		dir = filepath.Dir(target)
		start = filepath.Clean(target)
	}

	pages, err := scanDir(dir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("%s: %w", dir, ErrNoImages)
	}

	index := 0
	for i, p := range pages {
		if p.Path == start {
			index = i
			break
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pages = pages
	b.index = index
	return nil
}

// Len returns the number of pages.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pages)
}

// Page returns the page at the given index.
func (b *Book) Page(i int) (Page, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.pages) {
		return Page{}, false
	}
	return b.pages[i], true
}

// Index returns the current page index.
func (b *Book) Index() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.index
}

// SetDoublePage enables or disables side-by-side display.
func (b *Book) SetDoublePage(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doublePage = on
}

// DoublePage reports whether side-by-side display is enabled.
func (b *Book) DoublePage() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doublePage
}

// SetMangaMode enables or disables right-to-left reading order.
func (b *Book) SetMangaMode(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.manga = on
}

// MangaMode reports whether right-to-left reading order is active.
func (b *Book) MangaMode() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.manga
}

// SetForceSingleStep latches single-page stepping in double page mode.
func (b *Book) SetForceSingleStep(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forceSingleStep = on
}

// Displayed returns the indices of the currently displayed pages in
// reading order: one index, or two when double page mode is on and a
// second page exists.
func (b *Book) Displayed() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.pages) == 0 {
		return nil
	}
	if b.doublePage && b.index+1 < len(b.pages) {
		return []int{b.index, b.index + 1}
	}
	return []int{b.index}
}

// Next advances the current position by one displayed step: two pages
// in double page mode unless the single-step latch is held.
func (b *Book) Next() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.index = b.clampIndex(b.index + b.step())
}

// Previous moves the current position back by one displayed step.
func (b *Book) Previous() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.index = b.clampIndex(b.index - b.step())
}

// First jumps to the first page.
func (b *Book) First() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.index = 0
}

// Last jumps to the last page. In double page mode the last displayed
// position still starts a pair when one fits.
func (b *Book) Last() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.index = b.clampIndex(len(b.pages) - b.step())
}

// step returns the page distance of one turn.
func (b *Book) step() int {
	if b.doublePage && !b.forceSingleStep {
		return 2
	}
	return 1
}

// clampIndex bounds an index to the page list.
func (b *Book) clampIndex(i int) int {
	if len(b.pages) == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= len(b.pages) {
		return len(b.pages) - 1
	}
	return i
}

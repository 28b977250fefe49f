package book

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// defaultCacheSize is the number of decoded pages kept around the
// current position.
const defaultCacheSize = 8

// ErrNotLoaded indicates a page whose decode has not finished yet.
var ErrNotLoaded = errors.New("page not loaded")

// entry is one cached decode result.
type entry struct {
	img image.Image
	err error
}

// Loader decodes pages off the render goroutine. Requests go through a
// channel to a single worker; results land in a bounded cache keyed by
// page index. The renderer polls Get each frame and draws a placeholder
// until the decode lands.
type Loader struct {
	book *Book

	mu    sync.Mutex
	cache map[int]entry
	order []int

	jobs   chan int
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoader creates a loader for the given book. Start must be called
// before any Request.
func NewLoader(b *Book) *Loader {
	return &Loader{
		book:  b,
		cache: make(map[int]entry),
		jobs:  make(chan int, 32),
	}
}

// Start launches the decode worker. It stops when the context is
// canceled or Close is called.
func (l *Loader) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go l.run(ctx)
}

// Close stops the worker and waits for it to exit.
func (l *Loader) Close() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
}

// Request queues a page for decoding. Already-cached pages and full
// queues are skipped; the caller re-requests every frame anyway.
func (l *Loader) Request(i int) {
	l.mu.Lock()
	_, cached := l.cache[i]
	l.mu.Unlock()
	if cached {
		return
	}

	select {
	case l.jobs <- i:
	default:
	}
}

// Get returns the decoded page. A pending decode reports ErrNotLoaded;
// any other error is the decode failure itself, cached so a broken file
// is not retried every frame.
func (l *Loader) Get(i int) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.cache[i]
	if !ok {
		return nil, ErrNotLoaded
	}
	return e.img, e.err
}

// Invalidate drops the whole cache. Called when the book contents
// change.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[int]entry)
	l.order = nil
}

// run is the decode worker loop.
func (l *Loader) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case i := <-l.jobs:
			l.mu.Lock()
			_, cached := l.cache[i]
			l.mu.Unlock()
			if cached {
				continue
			}

			img, err := l.decode(i)
			l.store(i, entry{img: img, err: err})
		}
	}
}

// decode reads and decodes one page from disk.
func (l *Loader) decode(i int) (image.Image, error) {
	p, ok := l.book.Page(i)
	if !ok {
		return nil, fmt.Errorf("page %d out of range", i)
	}

	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", p.Path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", p.Path, err)
	}
	return img, nil
}

// store caches a decode result, evicting the oldest entries beyond the
// cache size.
func (l *Loader) store(i int, e entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.cache[i]; !ok {
		l.order = append(l.order, i)
	}
	l.cache[i] = e

	for len(l.order) > defaultCacheSize {
		oldest := l.order[0]
		l.order = l.order[1:]
		delete(l.cache, oldest)
	}
}

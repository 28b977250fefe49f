package app

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/dshills/riffle/internal/input"
)

const (
	defaultWindowW = 1024
	defaultWindowH = 768

	// prefetch is how many pages beyond the displayed ones are decoded
	// ahead in each direction.
	prefetch = 2
)

// game is the ebiten.Game driving the viewer: it polls input into the
// event queue, dispatches through the router, and draws the displayed
// pages at the viewport offsets.
type game struct {
	app    *Application
	poller poller
	queue  input.Queue

	// textures caches GPU copies of decoded pages by index.
	textures map[int]*ebiten.Image

	// lastDisplayed and lastSizes detect layout changes, so the
	// viewport is only re-laid-out (and re-anchored) when the displayed
	// set actually changes.
	lastDisplayed []int
	lastSizes     []image.Point
}

func newGame(a *Application) *game {
	return &game{
		app:      a,
		textures: make(map[int]*ebiten.Image),
	}
}

// invalidate drops cached textures and layout. Called when the book
// contents change.
func (g *game) invalidate() {
	for _, t := range g.textures {
		t.Deallocate()
	}
	g.textures = make(map[int]*ebiten.Image)
	g.lastDisplayed = nil
	g.lastSizes = nil
}

// Update runs one frame: input, navigation, page loading, layout.
func (g *game) Update() error {
	g.poller.poll(&g.queue)
	for {
		ev, ok := g.queue.Next()
		if !ok {
			break
		}
		g.app.router.Dispatch(ev)
	}

	g.requestPages()
	g.syncLayout()

	if g.app.quitting {
		return ErrQuit
	}
	return nil
}

// Draw renders the displayed pages at their layout positions, shifted
// by the scroll offset.
func (g *game) Draw(screen *ebiten.Image) {
	displayed := g.app.book.Displayed()
	rects := g.app.view.PageRects()
	offX, offY := g.app.view.Offset()

	for i, idx := range displayed {
		if i >= len(rects) {
			break
		}
		tex := g.texture(idx)
		if tex == nil {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(rects[i].Min.X-offX), float64(rects[i].Min.Y-offY))
		screen.DrawImage(tex, &op)
	}

	g.drawStatus(screen, displayed)
}

// Layout reports the render size and keeps the viewport in sync with
// the window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.view.SetVisibleAreaSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// requestPages queues decodes for the displayed pages and a small
// window around them.
func (g *game) requestPages() {
	displayed := g.app.book.Displayed()
	if len(displayed) == 0 {
		return
	}
	lo := displayed[0] - prefetch
	hi := displayed[len(displayed)-1] + prefetch
	for i := lo; i <= hi; i++ {
		if i >= 0 && i < g.app.book.Len() {
			g.app.loader.Request(i)
		}
	}
}

// syncLayout pushes the displayed page sizes into the viewport when
// they change. Pages still decoding get a window-sized placeholder.
func (g *game) syncLayout() {
	displayed := g.app.book.Displayed()
	if len(displayed) == 0 {
		return
	}

	visW, visH := g.app.view.VisibleAreaSize()
	sizes := make([]image.Point, len(displayed))
	for i, idx := range displayed {
		sizes[i] = image.Pt(visW, visH)
		if img, err := g.app.loader.Get(idx); err == nil {
			b := img.Bounds()
			sizes[i] = image.Pt(b.Dx(), b.Dy())
		}
	}

	if equalInts(displayed, g.lastDisplayed) && equalPts(sizes, g.lastSizes) {
		return
	}
	g.lastDisplayed = append(g.lastDisplayed[:0], displayed...)
	g.lastSizes = append(g.lastSizes[:0], sizes...)
	g.app.view.SetPages(g.app.book.MangaMode(), sizes...)
}

// texture returns the GPU image for a page, converting the decoded
// image on first use. Pages still decoding or failed return nil.
func (g *game) texture(idx int) *ebiten.Image {
	if t, ok := g.textures[idx]; ok {
		return t
	}
	img, err := g.app.loader.Get(idx)
	if err != nil || img == nil {
		return nil
	}
	t := ebiten.NewImageFromImage(img)
	g.textures[idx] = t
	g.evictTextures(idx)
	return t
}

// evictTextures drops GPU copies far from the given index.
func (g *game) evictTextures(around int) {
	for idx, t := range g.textures {
		if idx < around-2*prefetch || idx > around+2*prefetch {
			t.Deallocate()
			delete(g.textures, idx)
		}
	}
}

// drawStatus prints the page position and any load state in the
// corner.
func (g *game) drawStatus(screen *ebiten.Image, displayed []int) {
	if g.app.book.Len() == 0 {
		ebitenutil.DebugPrint(screen, "no images - drop a file or directory here")
		return
	}

	status := fmt.Sprintf("%d / %d", g.app.book.Index()+1, g.app.book.Len())
	for _, idx := range displayed {
		if _, err := g.app.loader.Get(idx); err != nil {
			status += " (loading)"
			break
		}
	}
	ebitenutil.DebugPrint(screen, status)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalPts(a, b []image.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package input

import (
	"sync"

	"github.com/dshills/riffle/internal/flow"
	"github.com/dshills/riffle/internal/input/key"
	"github.com/dshills/riffle/internal/input/keymap"
)

// Opener opens files dropped onto the window.
type Opener interface {
	// Open opens the given paths as a batch; the first path decides
	// the new document.
	Open(paths ...string) error
}

// Screen exposes the pointer bounds and, where the backend supports
// it, moving the pointer for cursor wrapping.
type Screen interface {
	// Size returns the screen size in pixels.
	Size() (w, h int)

	// WarpPointer moves the pointer to the given position, reporting
	// whether the backend could. When it cannot, drag deltas keep
	// tracking the real pointer instead.
	WarpPointer(x, y float64) bool
}

// UI exposes the window controls the keymap can target.
type UI interface {
	ToggleFullscreen()
	SetFullscreen(enabled bool)
	Quit()
}

// Stepper latches single-page stepping while Ctrl is held in
// double-page mode.
type Stepper interface {
	SetForceSingleStep(on bool)
}

// Pager jumps to the ends of the document.
type Pager interface {
	FirstPage()
	LastPage()
}

// actionFunc executes one named keymap action.
type actionFunc func(args map[string]any)

// Router dispatches raw input events. It owns the pointer gesture
// state and the action table; all page-flow decisions are delegated to
// the flow engine.
type Router struct {
	mu sync.RWMutex

	engine  *flow.Engine
	vp      flow.Viewport
	keymaps *keymap.Registry
	actions map[string]actionFunc

	gesture Gesture

	opener  Opener
	screen  Screen
	ui      UI
	stepper Stepper
	pager   Pager

	escapeQuits bool
}

// Option configures a Router.
type Option func(*Router)

// WithOpener sets the drop-target file opener.
func WithOpener(o Opener) Option {
	return func(r *Router) { r.opener = o }
}

// WithScreen sets the screen used for cursor wrapping.
func WithScreen(s Screen) Option {
	return func(r *Router) { r.screen = s }
}

// WithUI sets the window-control target.
func WithUI(u UI) Option {
	return func(r *Router) { r.ui = u }
}

// WithStepper sets the single-step latch target.
func WithStepper(s Stepper) Option {
	return func(r *Router) { r.stepper = s }
}

// WithPager sets the first/last page target.
func WithPager(p Pager) Option {
	return func(r *Router) { r.pager = p }
}

// WithEscapeQuits makes Escape quit the viewer instead of leaving
// fullscreen.
func WithEscapeQuits(quit bool) Option {
	return func(r *Router) { r.escapeQuits = quit }
}

// NewRouter creates a router driving the given engine and viewport,
// resolving key chords through the given registry.
func NewRouter(engine *flow.Engine, vp flow.Viewport, keymaps *keymap.Registry, opts ...Option) *Router {
	r := &Router{
		engine:  engine,
		vp:      vp,
		keymaps: keymaps,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerActions()
	return r
}

// SetEscapeQuits updates the Escape behavior. Called on config reload.
func (r *Router) SetEscapeQuits(quit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.escapeQuits = quit
}

// Reset clears all gesture state. The document owner calls this when
// the displayed file changes.
func (r *Router) Reset() {
	r.gesture.Reset()
	r.engine.Reset()
}

// Dispatch routes one raw input event.
func (r *Router) Dispatch(ev Event) {
	switch ev.Kind {
	case KindKeyPress:
		r.KeyPress(ev.Key)
	case KindKeyRelease:
		r.KeyRelease(ev.Key)
	case KindWheel:
		r.Wheel(ev.WheelX, ev.WheelY, ev.Held(ButtonMiddle))
	case KindPointerPress:
		r.PointerPress(ev.X, ev.Y, ev.Button)
	case KindPointerMove:
		r.PointerMove(ev.X, ev.Y, ev.Held(ButtonLeft))
	case KindPointerRelease:
		r.PointerRelease(ev.X, ev.Y, ev.Button, ev.Mods)
	case KindDrop:
		r.Drop(ev.Paths, ev.FromSelf)
	}
}

// KeyPress handles a key press. Every dispatch cycle starts with the
// flip debounce deactivated; handlers that want debounced flipping
// re-enable it themselves.
func (r *Router) KeyPress(ev key.Event) {
	r.engine.State().ProtectionActive = false

	if ev.Key == key.KeyControl && r.stepper != nil {
		r.stepper.SetForceSingleStep(true)
	}

	b := r.keymaps.Lookup(ev)
	if b == nil {
		return
	}
	r.mu.RLock()
	fn := r.actions[b.Action]
	r.mu.RUnlock()
	if fn != nil {
		fn(b.Args)
	}
}

// KeyRelease handles a key release.
func (r *Router) KeyRelease(ev key.Event) {
	if ev.Key == key.KeyControl && r.stepper != nil {
		r.stepper.SetForceSingleStep(false)
	}
}

// Wheel handles a mouse-wheel event. Vertical ticks scroll (smart or
// plain per configuration); horizontal ticks flip pages, with the
// reading order deciding which side advances. Wheel events while the
// middle button is held are ignored.
func (r *Router) Wheel(dx, dy float64, middleHeld bool) {
	if middleHeld {
		return
	}

	st := r.engine.State()
	st.ProtectionActive = true
	p := r.engine.Prefs()

	switch {
	case dy < 0:
		if p.SmartScroll {
			r.engine.SmartScroll(flow.Backward, p.WheelScrollPixels)
		} else {
			r.engine.ScrollWithFlipping(0, -p.WheelScrollPixels)
		}
	case dy > 0:
		if p.SmartScroll {
			r.engine.SmartScroll(flow.Forward, p.WheelScrollPixels)
		} else {
			r.engine.ScrollWithFlipping(0, p.WheelScrollPixels)
		}
	}

	switch {
	case dx > 0:
		if r.vp.IsMangaMode() {
			r.engine.FlipPage(flow.Backward)
		} else {
			r.vp.NextPage()
		}
	case dx < 0:
		if r.vp.IsMangaMode() {
			r.vp.NextPage()
		} else {
			r.engine.FlipPage(flow.Backward)
		}
	}
}

// PointerPress handles a mouse button press.
func (r *Router) PointerPress(x, y float64, btn Button) {
	if btn == ButtonLeft {
		r.gesture.Press(x, y)
	}
}

// PointerRelease handles a mouse button release. A primary-button
// click with no intervening motion advances to the next page.
// Alt+right-click goes back one page through the flip debounce.
func (r *Router) PointerRelease(x, y float64, btn Button, mods key.Modifier) {
	switch {
	case btn == ButtonLeft:
		if r.gesture.Dragging() && r.gesture.Unmoved(x, y) {
			r.vp.NextPage()
		}
		r.gesture.Release()
	case btn == ButtonRight && mods.HasAlt():
		r.engine.FlipPage(flow.Backward)
	}
}

// PointerMove handles pointer motion. With the primary button held the
// delta from the last seen position scrolls the viewport directly, with
// no page-flip debounce. When cursor wrapping is enabled and the scroll
// moved content, the position is wrapped around the screen edges so the
// drag can continue indefinitely.
func (r *Router) PointerMove(x, y float64, leftHeld bool) {
	if !leftHeld || !r.gesture.Dragging() {
		return
	}

	last := r.gesture.Last()
	scrolled := r.vp.Scroll(int(last.X-x), int(last.Y-y), flow.ScopeView)

	if r.engine.Prefs().WrapMouseScroll && scrolled && r.screen != nil {
		w, h := r.screen.Size()
		nx, ny := WarpPoint(x, y, float64(w), float64(h))
		if (nx != x || ny != y) && r.screen.WarpPointer(nx, ny) {
			r.gesture.SetLast(nx, ny)
			return
		}
	}
	r.gesture.SetLast(x, y)
}

// Drop handles file paths dragged onto the window from outside.
// Drops originating inside the window are ignored.
func (r *Router) Drop(paths []string, fromSelf bool) {
	if fromSelf || len(paths) == 0 || r.opener == nil {
		return
	}
	_ = r.opener.Open(paths...)
}

// registerActions builds the action table the keymap dispatches into.
func (r *Router) registerActions() {
	r.actions = map[string]actionFunc{
		"page.next": func(map[string]any) {
			r.vp.NextPage()
		},
		"page.previous": func(map[string]any) {
			r.vp.PreviousPage()
		},
		"page.first": func(map[string]any) {
			if r.pager != nil {
				r.pager.FirstPage()
			}
		},
		"page.last": func(map[string]any) {
			if r.pager != nil {
				r.pager.LastPage()
			}
		},
		"scroll.down": func(map[string]any) {
			r.engine.ScrollWithFlipping(0, r.engine.Prefs().KeyScrollPixels)
		},
		"scroll.up": func(map[string]any) {
			r.engine.ScrollWithFlipping(0, -r.engine.Prefs().KeyScrollPixels)
		},
		"scroll.right": func(map[string]any) {
			r.engine.ScrollWithFlipping(r.engine.Prefs().KeyScrollPixels, 0)
		},
		"scroll.left": func(map[string]any) {
			r.engine.ScrollWithFlipping(-r.engine.Prefs().KeyScrollPixels, 0)
		},
		"scroll.smartDown": func(map[string]any) {
			r.engine.SmartScroll(flow.Forward, 0)
		},
		"scroll.smartUp": func(map[string]any) {
			r.engine.SmartScroll(flow.Backward, 0)
		},
		"view.snap": func(args map[string]any) {
			r.vp.ScrollToFixed(
				flow.ParseHorizAnchor(argString(args, "horiz")),
				flow.ParseVertAnchor(argString(args, "vert")),
			)
		},
		"view.toggleFullscreen": func(map[string]any) {
			if r.ui != nil {
				r.ui.ToggleFullscreen()
			}
		},
		"app.escape": func(map[string]any) {
			if r.ui == nil {
				return
			}
			r.mu.RLock()
			quit := r.escapeQuits
			r.mu.RUnlock()
			if quit {
				r.ui.Quit()
			} else {
				r.ui.SetFullscreen(false)
			}
		},
		"app.quit": func(map[string]any) {
			if r.ui != nil {
				r.ui.Quit()
			}
		},
	}
}

// argString extracts a string argument, tolerating missing keys.
func argString(args map[string]any, name string) string {
	if args == nil {
		return ""
	}
	s, _ := args[name].(string)
	return s
}

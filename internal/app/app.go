package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/riffle/internal/book"
	"github.com/dshills/riffle/internal/config"
	"github.com/dshills/riffle/internal/flow"
	"github.com/dshills/riffle/internal/input"
	"github.com/dshills/riffle/internal/input/keymap"
	"github.com/dshills/riffle/internal/viewport"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses the default
	// location under the user config directory.
	ConfigPath string

	// Path is the image file or directory to open at startup.
	Path string

	// Logger receives application logs. Nil discards them.
	Logger *Logger

	// Watch enables live configuration reload.
	Watch bool
}

// Application owns the viewer's components and the window lifecycle.
type Application struct {
	logger *Logger

	cfg        *config.Manager
	cfgWatcher *config.Watcher
	cfgSub     *config.Subscription

	book    *book.Book
	loader  *book.Loader
	view    *viewport.View
	engine  *flow.Engine
	router  *input.Router
	keymaps *keymap.Registry

	game *game

	// quitting is set from the router's quit action; Update picks it up
	// on the same frame. Only touched on the game goroutine.
	quitting bool
}

// New assembles the application. The window is not created until Run.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	cfg, err := config.NewManager(opts.ConfigPath)
	if err != nil {
		logger.Warn("config: %v (using defaults)", err)
	}
	f := cfg.Current()
	logger.SetLevel(ParseLogLevel(f.Log.Level))

	a := &Application{
		logger: logger,
		cfg:    cfg,
		book:   book.New(),
	}

	a.loader = book.NewLoader(a.book)
	a.view = viewport.New(defaultWindowW, defaultWindowH, a.book)
	a.engine = flow.NewEngine(a.view, f.Scroll.Prefs())

	a.book.SetDoublePage(f.Reading.DoublePage)
	a.book.SetMangaMode(f.Reading.MangaMode)

	a.keymaps = keymap.NewRegistry()
	if err := a.keymaps.Register(keymap.Default()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	a.applyUserKeymap(f)

	a.router = input.NewRouter(a.engine, a.view, a.keymaps,
		input.WithOpener(opener{a}),
		input.WithScreen(screen{a}),
		input.WithUI(ui{a}),
		input.WithStepper(a.book),
		input.WithPager(pager{a}),
		input.WithEscapeQuits(f.UI.EscapeQuits),
	)

	a.cfgSub = cfg.Subscribe(a.applyConfig)

	if opts.Watch {
		w, err := config.NewWatcher(cfg, func(err error) {
			logger.Warn("config reload: %v", err)
		})
		if err != nil {
			logger.Warn("config watcher: %v", err)
		} else {
			a.cfgWatcher = w
		}
	}

	if opts.Path != "" {
		if err := a.Open(opts.Path); err != nil {
			return nil, err
		}
	}

	a.game = newGame(a)
	return a, nil
}

// Run opens the window and blocks until the viewer exits.
func (a *Application) Run(ctx context.Context) error {
	a.loader.Start(ctx)
	defer a.loader.Close()
	if a.cfgWatcher != nil {
		defer a.cfgWatcher.Close()
	}
	defer a.cfgSub.Unsubscribe()

	ebiten.SetWindowTitle(a.windowTitle())
	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.cfg.Current().UI.Fullscreen)

	a.logger.Info("starting, %d pages", a.book.Len())

	if err := ebiten.RunGame(a.game); err != nil && err != ErrQuit {
		return err
	}
	return nil
}

// Open replaces the open book with the given paths. Only the first
// path is used; a file opens its directory positioned at that file.
func (a *Application) Open(paths ...string) error {
	if err := a.book.Open(paths...); err != nil {
		a.logger.Error("open: %v", err)
		return NewOperationError("open", paths[0], err)
	}

	a.loader.Invalidate()
	a.router.Reset()
	if a.game != nil {
		a.game.invalidate()
	}
	ebiten.SetWindowTitle(a.windowTitle())
	a.logger.Info("opened %s, %d pages", paths[0], a.book.Len())
	return nil
}

// applyConfig pushes a reloaded configuration into the components.
func (a *Application) applyConfig(f config.File) {
	a.logger.SetLevel(ParseLogLevel(f.Log.Level))
	a.engine.SetPrefs(f.Scroll.Prefs())
	a.router.SetEscapeQuits(f.UI.EscapeQuits)
	a.book.SetDoublePage(f.Reading.DoublePage)
	a.book.SetMangaMode(f.Reading.MangaMode)
	a.applyUserKeymap(f)
	a.logger.Info("configuration reloaded")
}

// applyUserKeymap registers the [keymap] overrides from the config file.
// A bad chord rejects the whole table and keeps the previous bindings.
func (a *Application) applyUserKeymap(f config.File) {
	if err := a.keymaps.Register(keymap.FromConfig(f.Keymap)); err != nil {
		a.logger.Warn("keymap: %v", err)
	}
}

func (a *Application) windowTitle() string {
	if a.book.Len() == 0 {
		return "riffle"
	}
	if p, ok := a.book.Page(a.book.Index()); ok {
		return fmt.Sprintf("riffle - %s", filepath.Base(p.Path))
	}
	return "riffle"
}

// opener adapts the application for the router's drop handling.
type opener struct{ a *Application }

func (o opener) Open(paths ...string) error { return o.a.Open(paths...) }

// screen adapts the window for cursor wrapping. Ebiten cannot move the
// OS pointer, so warping is reported unsupported and drags track the
// real pointer.
type screen struct{ a *Application }

func (s screen) Size() (int, int)              { return s.a.view.VisibleAreaSize() }
func (s screen) WarpPointer(x, y float64) bool { return false }

// ui adapts the window controls for the router's actions.
type ui struct{ a *Application }

func (u ui) ToggleFullscreen()          { ebiten.SetFullscreen(!ebiten.IsFullscreen()) }
func (u ui) SetFullscreen(enabled bool) { ebiten.SetFullscreen(enabled) }
func (u ui) Quit()                      { u.a.quitting = true }

// pager adapts the end-of-book jumps.
type pager struct{ a *Application }

func (p pager) FirstPage() {
	p.a.book.First()
	p.a.router.Reset()
}

func (p pager) LastPage() {
	p.a.book.Last()
	p.a.router.Reset()
}

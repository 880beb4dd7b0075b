package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rook-computer/streamclock/internal/display"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
	"github.com/rook-computer/streamclock/internal/state"
	"github.com/rook-computer/streamclock/internal/system"
	"github.com/rook-computer/streamclock/internal/web"
)

// App runs the web server and, when a renderer is attached, the local clock
// display fed from Store.
type App struct {
	Store  *state.Store
	Render render.Renderer
	Web    web.Server
	Logger Logger
	Debug  bool

	// Console, when set, is put in graphics mode for the lifetime of the display.
	Console *system.Console
	// Keys are evdev bindings active while the app runs.
	Keys system.KeyBindings

	Now      func() time.Time
	Location *time.Location

	driver   *display.Driver
	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, renderer render.Renderer, webServer web.Server) *App {
	return &App{Store: store, Render: renderer, Web: webServer, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// DefaultKeys binds F4 to exit and F2 to toggle the layout of the local display.
func (app *App) DefaultKeys() system.KeyBindings {
	return system.KeyBindings{
		system.KeyF4: func() { app.Exit(nil) },
		system.KeyF2: app.ToggleLayout,
	}
}

// ToggleLayout flips the displayed layout between horizontal and vertical.
func (app *App) ToggleLayout() {
	s := app.Store.Settings()
	if s.Layout == settings.LayoutVertical {
		s.Layout = settings.LayoutHorizontal
	} else {
		s.Layout = settings.LayoutVertical
	}
	app.Store.Replace(s)
	app.log().Infof("app", "layout -> %s", s.Layout)
}

func (app *App) log() Logger {
	if app.Logger == nil {
		return NoopLogger{}
	}
	return app.Logger
}

// Start blocks until ctx is done or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}
	if app.Web == nil {
		app.Web = &web.NoopServer{}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := app.Web.Start(runCtx); err != nil {
		app.log().Errorf("app", "web start error: %v", err)
		return err
	}
	defer func() { _ = app.Web.Stop() }()

	if fb, ok := app.Render.(*render.FBRenderer); ok {
		fb.Logger = app.Logger
		fb.Debug = app.Debug
	}
	if err := app.Render.Start(runCtx); err != nil {
		app.log().Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer func() { _ = app.Render.Stop() }()

	if app.Console != nil {
		if err := app.Console.Acquire(); err != nil {
			app.log().Errorf("app", "console acquire: %v", err)
		}
		defer func() { _ = app.Console.Release() }()
	}
	if len(app.Keys) > 0 {
		system.WatchKeys(runCtx, app.Logger, app.Keys)
	}

	app.driver = &display.Driver{
		Source:   app.Store,
		Surface:  app.Render,
		Now:      app.Now,
		Location: app.Location,
		Logger:   app.Logger,
	}
	if err := app.driver.Start(runCtx); err != nil {
		app.log().Errorf("app", "display start error: %v", err)
		return err
	}
	defer app.driver.Stop()
	app.log().Infof("app", "running")

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	return err
}

func (app *App) Stop() error {
	if app.driver != nil {
		app.driver.Stop()
	}
	return nil
}

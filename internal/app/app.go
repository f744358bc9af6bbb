// Package app wires the soundboard services together and runs the desktop
// application.
package app

import (
	"context"

	"fyne.io/fyne/v2"

	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/config"
	"github.com/ytget/soundboard/internal/dispatch"
	"github.com/ytget/soundboard/internal/library"
	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/overlay"
	"github.com/ytget/soundboard/internal/playback"
	"github.com/ytget/soundboard/internal/ui"
)

var logger = logging.Zone("soundboard/app")

// Registrar binds global accelerators and reports the fired ones
type Registrar interface {
	library.Registrar
	Fired() <-chan string
}

// App holds the services of one running soundboard
type App struct {
	Config     *config.Config
	Fyne       fyne.App
	Store      *config.Store
	Backend    audio.Backend
	Registrar  Registrar
	Library    *library.Registry
	Engine     *playback.Engine
	Dispatcher *dispatch.Dispatcher
	Bus        *overlay.Bus
	Board      *overlay.Sync
	View       *overlay.View
	Overlay    *overlay.Controller

	overlayWindow *ui.OverlayWindow
	localization  *ui.Localization
}

// New wires the services. Nothing is loaded or started yet.
func New(cfg *config.Config, fyneApp fyne.App, backend audio.Backend, registrar Registrar) *App {
	store := config.NewStore(fyneApp)

	registry := library.NewRegistry(store, registrar)
	engine := playback.NewEngine(registry, backend, cfg.FadeOut)
	registry.SetPlayer(engine)

	bus := overlay.NewBus()
	board := overlay.NewSync(store, bus)
	board.SetSettingsCallback(engine.ApplySettings)

	a := &App{
		Config:     cfg,
		Fyne:       fyneApp,
		Store:      store,
		Backend:    backend,
		Registrar:  registrar,
		Library:    registry,
		Engine:     engine,
		Dispatcher: dispatch.NewDispatcher(registry, engine),
		Bus:        bus,
		Board:      board,
		View:       overlay.NewView(),
	}
	a.Overlay = overlay.NewController(a.createOverlay)
	return a
}

// Start launches the background loops. They stop when ctx is done.
func (a *App) Start(ctx context.Context) {
	// Subscribe before anything is published so the overlay sees the initial state
	viewMsgs := a.Bus.Subscribe(ctx)
	controlMsgs := a.Bus.Subscribe(ctx)

	go a.Engine.Run(ctx)
	go a.Dispatcher.Run(ctx, a.Registrar.Fired())
	go a.View.Run(ctx, viewMsgs, a.renderOverlay)
	go a.Overlay.Run(ctx, controlMsgs)
}

// Load restores the persisted state. A component that fails to load stays
// unloaded, so its stored data is not overwritten later.
func (a *App) Load() {
	if err := a.Library.Load(); err != nil {
		logger.WithError(err).Error("failed to load tracks")
	}
	if err := a.Board.Load(); err != nil {
		logger.WithError(err).Error("failed to load settings")
		a.Engine.ApplySettings(a.Board.Settings())
	}
	logger.WithField("tracks", len(a.Library.Tracks())).Info("soundboard loaded")
}

// NewTrimEditor opens a preview editor for track
func (a *App) NewTrimEditor(track model.Track) *playback.TrimEditor {
	return playback.NewTrimEditor(a.Backend, track, a.Config.TrimPreviewFade)
}

// Run builds the main window and blocks until the application quits
func (a *App) Run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	a.Fyne.Settings().SetTheme(ui.NewBoardTheme())
	window := a.Fyne.NewWindow("")
	window.Resize(fyne.NewSize(a.Config.WindowWidth, a.Config.WindowHeight))
	window.SetMaster()

	a.Start(ctx)
	a.Load()

	language := a.Store.GetLanguage()
	if a.Config.Language != "" {
		language = a.Config.Language
	}
	languages := &languageStore{store: a.Store, current: language}

	root := ui.NewRootUI(window, a.Fyne, ui.Deps{
		Library:       a.Library,
		Player:        a.Engine,
		Clicker:       a.Dispatcher,
		Board:         a.Board,
		Languages:     languages,
		NewTrimEditor: a.NewTrimEditor,
	})
	a.localization = root.Localization()

	window.SetOnClosed(func() {
		a.Engine.Panic()
		a.Registrar.UnregisterAll()
	})

	quit := make(chan struct{})
	go func() {
		select {
		case <-parent.Done():
			logger.Info("shutting down")
			fyne.Do(a.Fyne.Quit)
		case <-quit:
		}
	}()
	defer close(quit)

	window.ShowAndRun()
}

// createOverlay builds the overlay window on first toggle
func (a *App) createOverlay() overlay.Surface {
	var surface overlay.Surface
	fyne.DoAndWait(func() {
		localization := a.localization
		if localization == nil {
			localization = ui.NewLocalization()
		}
		a.overlayWindow = ui.NewOverlayWindow(a.Fyne, a.View, localization,
			fyne.NewSize(a.Config.OverlayWidth, a.Config.OverlayHeight))
		surface = &mainThreadSurface{window: a.overlayWindow}
	})
	return surface
}

// renderOverlay redraws the overlay after the view changed
func (a *App) renderOverlay() {
	fyne.Do(func() {
		if a.overlayWindow != nil {
			a.overlayWindow.Render()
		}
	})
}

// mainThreadSurface moves surface calls from the controller loop onto the
// UI goroutine
type mainThreadSurface struct {
	window *ui.OverlayWindow
}

func (s *mainThreadSurface) Show() {
	fyne.DoAndWait(s.window.Show)
}

func (s *mainThreadSurface) Hide() {
	fyne.DoAndWait(s.window.Hide)
}

func (s *mainThreadSurface) Visible() bool {
	var visible bool
	fyne.DoAndWait(func() { visible = s.window.Visible() })
	return visible
}

// languageStore keeps a configured language from being replaced by the stored one
type languageStore struct {
	store   *config.Store
	current string
}

func (l *languageStore) GetLanguage() string {
	return l.current
}

func (l *languageStore) SetLanguage(lang string) {
	l.current = lang
	l.store.SetLanguage(lang)
}

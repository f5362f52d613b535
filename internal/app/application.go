package app

import (
	"runtime"
	"time"

	"neurotic-crabs/internal/config"
	"neurotic-crabs/internal/controllers"
	"neurotic-crabs/internal/logger"
	"neurotic-crabs/internal/models"
	"neurotic-crabs/internal/storage"
	"neurotic-crabs/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "neurotic crabs"
	AppID      = "io.github.neuroticcrabs"
	AppVersion = "0.1.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	store      storage.Store
	controller *controllers.MainController
	view       *views.MainView
	lifecycle  *Lifecycle
	logger     logger.Logger
	clock      models.Clock
	animation  *fyne.Animation
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) *Application {
	if log == nil {
		log = logger.NoOp{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"persistence":   cfg.Persist,
	})

	var store storage.Store
	if cfg.Persist {
		store = storage.NewPreferencesStore(fyneApp.Preferences())
	}

	clock := models.Clock(time.Now)
	controller := controllers.NewMainController(store, clock, log)
	view := views.NewMainView(window, cfg.Debug)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		store:      store,
		controller: controller,
		view:       view,
		logger:     log,
		clock:      clock,
	}
	a.lifecycle = NewLifecycle(a)
	a.setupHandlers()
	a.setupMenus()

	log.Info("Application", "initialization complete", nil)
	return a
}

func (a *Application) setupHandlers() {
	a.view.SetLabelChangeHandler(a.controller.HandleLabelChange)
	a.view.SetValueChangeHandler(a.controller.HandleValueChange)
	a.view.SetIncrementHandler(a.controller.HandleIncrement)
	a.view.SetThemeChangeHandler(a.controller.HandleThemeChange)

	a.controller.SetThemeHandler(func(variant models.ThemeVariant) {
		a.logger.Debug("Application", "theme changed", map[string]interface{}{
			"variant": variant.String(),
		})
		a.view.Toolbar().SetActive(variant)
		a.fyneApp.Settings().SetTheme(views.ThemeFor(variant))
	})
}

// Run shows the window and blocks until the application exits
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
	a.fyneApp.Lifecycle().SetOnStopped(a.lifecycle.Shutdown)

	a.view.Show()
	a.startFrameLoop()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit asks the UI goroutine to stop the application. Safe from any goroutine.
func (a *Application) Quit() {
	fyne.Do(a.fyneApp.Quit)
}

// startFrameLoop ticks once per drawn frame for as long as frames ask for a repaint
func (a *Application) startFrameLoop() {
	a.animation = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick: func(float32) {
			a.RenderFrame()
		},
	}
	a.animation.Start()
}

func (a *Application) stopFrameLoop() {
	if a.animation != nil {
		a.animation.Stop()
	}
}

// RenderFrame runs one host frame: advance state, then draw it
func (a *Application) RenderFrame() models.Frame {
	frame := a.controller.OnFrame(a.clock())
	a.view.Render(frame)
	// Host side of the repaint request: a frame that does not ask for another ends the loop
	if !frame.Repaint {
		a.stopFrameLoop()
	}
	return frame
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}

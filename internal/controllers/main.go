package controllers

import (
	"sync"
	"time"

	"neurotic-crabs/internal/logger"
	"neurotic-crabs/internal/models"
	"neurotic-crabs/internal/storage"
)

const component = "MainController"

// MainController owns the application state and implements the host hooks:
// construction, one OnFrame per rendered frame, and OnShutdown.
type MainController struct {
	state  *models.ApplicationState
	logger logger.Logger

	frames       uint64
	theme        models.ThemeVariant
	themeHandler func(models.ThemeVariant)

	shutdownOnce sync.Once
}

// NewMainController restores state from store; store may be nil
func NewMainController(store storage.Store, clock models.Clock, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOp{}
	}

	state := models.LoadState(store, clock, log)

	log.Info(component, "controller initialized", map[string]interface{}{
		"persistence": store != nil,
		"label":       state.Label,
		"value":       state.Value,
	})

	return &MainController{
		state:  state,
		logger: log,
	}
}

// OnFrame is called by the host once per rendered frame
func (mc *MainController) OnFrame(now time.Time) models.Frame {
	mc.frames++
	return mc.state.OnFrame(now)
}

// OnShutdown persists state. Later calls are ignored.
func (mc *MainController) OnShutdown(store storage.Store) {
	mc.shutdownOnce.Do(func() {
		mc.logger.Info(component, "persisting state before exit", map[string]interface{}{
			"frames":        mc.frames,
			"frame_time_ms": 1000 * mc.state.FrameTime(),
		})
		mc.state.Persist(store, mc.logger)
	})
}

func (mc *MainController) HandleLabelChange(label string) {
	mc.state.SetLabel(label)
}

func (mc *MainController) HandleValueChange(value float64) {
	mc.state.SetValue(value)
}

func (mc *MainController) HandleIncrement() {
	mc.state.Increment()
	mc.logger.Debug(component, "value incremented", map[string]interface{}{
		"value": mc.state.Value,
	})
}

func (mc *MainController) SetThemeHandler(handler func(models.ThemeVariant)) {
	mc.themeHandler = handler
}

func (mc *MainController) HandleThemeChange(variant models.ThemeVariant) {
	if mc.theme == variant {
		return
	}
	mc.theme = variant
	if mc.themeHandler != nil {
		mc.themeHandler(variant)
	}
}

func (mc *MainController) Theme() models.ThemeVariant {
	return mc.theme
}

// State exposes the owned state for inspection
func (mc *MainController) State() *models.ApplicationState {
	return mc.state
}

func (mc *MainController) Frames() uint64 {
	return mc.frames
}

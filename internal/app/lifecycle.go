package app

import (
	"sync"
)

// Lifecycle runs the exit sequence once, whichever of window close,
// host stop, or an OS signal arrives first
type Lifecycle struct {
	app  *Application
	once sync.Once
	done bool
}

func NewLifecycle(a *Application) *Lifecycle {
	return &Lifecycle{app: a}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		log := l.app.logger
		log.Info("Lifecycle", "shutdown sequence initiated", nil)

		l.app.stopFrameLoop()
		l.app.controller.OnShutdown(l.app.store)

		l.done = true
		log.Info("Lifecycle", "shutdown sequence completed", map[string]interface{}{
			"frames": l.app.controller.Frames(),
		})
	})
}

func (l *Lifecycle) IsShutdown() bool {
	return l.done
}

package app

import (
	"fmt"

	"neurotic-crabs/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Dark Theme", func() {
			a.controller.HandleThemeChange(models.ThemeDark)
		}),
		fyne.NewMenuItem("Light Theme", func() {
			a.controller.HandleThemeChange(models.ThemeLight)
		}),
		fyne.NewMenuItem("System Theme", func() {
			a.controller.HandleThemeChange(models.ThemeSystem)
		}),
	)

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Frame Report", func() {
			dialog.ShowInformation("Frame Report", a.FrameReport(), a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, debugMenu))
}

// FrameReport summarises rendering so far
func (a *Application) FrameReport() string {
	state := a.controller.State()
	return fmt.Sprintf("Frames rendered: %d\nSmoothed frame time: %.02fms\nPersistence: %t",
		a.controller.Frames(), 1000*state.FrameTime(), a.store != nil)
}

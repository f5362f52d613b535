package views

import (
	"neurotic-crabs/internal/models"
	"neurotic-crabs/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const Heading = "neurotic crabs"

// MainView builds the widget tree once and re-applies every Frame to it,
// so what is on screen always mirrors the controller's state.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	readout       *components.Readout
	controls      *components.Controls
	paintArea     *components.PaintArea
	debugWarning  *widget.Label

	rendered uint64
}

// NewMainView creates a new main view; showDebugWarning adds the bottom notice
func NewMainView(window fyne.Window, showDebugWarning bool) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(showDebugWarning)
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents(showDebugWarning bool) {
	mv.toolbar = components.NewToolbar()
	mv.readout = components.NewReadout()
	mv.controls = components.NewControls()
	mv.paintArea = components.NewPaintArea()
	if showDebugWarning {
		mv.debugWarning = components.NewDebugWarning()
	}
}

func (mv *MainView) buildLayout() {
	heading := widget.NewLabelWithStyle(Heading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	topArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
		heading,
		mv.readout.GetContainer(),
		mv.controls.GetContainer(),
		widget.NewSeparator(),
	)

	var bottomArea fyne.CanvasObject
	if mv.debugWarning != nil {
		bottomArea = mv.debugWarning
	}

	mv.mainContainer = container.NewBorder(
		topArea,
		bottomArea,
		nil,
		nil,
		mv.paintArea.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Render draws one frame. It must run on the UI goroutine.
func (mv *MainView) Render(frame models.Frame) {
	mv.rendered++
	mv.readout.SetText(frame.Readout())
	mv.controls.Render(frame)
	mv.paintArea.Render(frame)
}

func (mv *MainView) SetLabelChangeHandler(handler func(string)) {
	mv.controls.SetLabelHandler(handler)
}

func (mv *MainView) SetValueChangeHandler(handler func(float64)) {
	mv.controls.SetValueHandler(handler)
}

func (mv *MainView) SetIncrementHandler(handler func()) {
	mv.controls.SetIncrementHandler(handler)
}

func (mv *MainView) SetThemeChangeHandler(handler func(models.ThemeVariant)) {
	mv.toolbar.SetThemeHandler(handler)
}

func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) GetMainContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) Controls() *components.Controls {
	return mv.controls
}

func (mv *MainView) PaintArea() *components.PaintArea {
	return mv.paintArea
}

func (mv *MainView) Readout() *components.Readout {
	return mv.readout
}

func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) HasDebugWarning() bool {
	return mv.debugWarning != nil
}

// RenderedFrames counts Render calls
func (mv *MainView) RenderedFrames() uint64 {
	return mv.rendered
}

package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Readout shows the current time and smoothed frame time
type Readout struct {
	container *fyne.Container
	label     *widget.Label
}

func NewReadout() *Readout {
	label := widget.NewLabel("")
	return &Readout{
		container: container.NewHBox(label),
		label:     label,
	}
}

func (r *Readout) GetContainer() *fyne.Container {
	return r.container
}

func (r *Readout) SetText(text string) {
	if r.label.Text == text {
		return
	}
	r.label.SetText(text)
}

func (r *Readout) Text() string {
	return r.label.Text
}

// NewDebugWarning returns the bottom-line notice shown in debug mode
func NewDebugWarning() *widget.Label {
	warning := widget.NewLabel("⚠ Debug mode enabled: expect slower frames")
	warning.Importance = widget.WarningImportance
	return warning
}

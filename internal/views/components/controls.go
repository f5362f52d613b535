package components

import (
	"neurotic-crabs/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Controls groups the label entry, the position slider and the increment button.
// Render pushes state into the widgets; user edits flow out through the handlers.
type Controls struct {
	container *fyne.Container
	entry     *widget.Entry
	slider    *widget.Slider
	button    *widget.Button

	labelHandler     func(string)
	valueHandler     func(float64)
	incrementHandler func()

	// rendering suppresses handler calls triggered by programmatic updates
	rendering bool
}

func NewControls() *Controls {
	c := &Controls{}

	c.entry = widget.NewEntry()
	c.entry.OnChanged = func(text string) {
		if c.rendering || c.labelHandler == nil {
			return
		}
		c.labelHandler(text)
	}

	c.slider = widget.NewSlider(models.MinValue, models.MaxValue)
	c.slider.Step = 0
	c.slider.OnChanged = func(value float64) {
		if c.rendering || c.valueHandler == nil {
			return
		}
		c.valueHandler(value)
	}

	c.button = widget.NewButton("click me", func() {
		if c.incrementHandler != nil {
			c.incrementHandler()
		}
	})

	c.container = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Write something: "), nil, c.entry),
		container.NewBorder(nil, nil, nil, widget.NewLabel("pos x"), c.slider),
		container.NewHBox(c.button),
	)
	return c
}

// Render applies the frame's label and value without echoing them back
func (c *Controls) Render(frame models.Frame) {
	c.rendering = true
	defer func() { c.rendering = false }()

	if c.slider.Min != frame.MinValue || c.slider.Max != frame.MaxValue {
		c.slider.Min = frame.MinValue
		c.slider.Max = frame.MaxValue
		c.slider.Refresh()
	}
	if c.slider.Value != frame.Value {
		c.slider.SetValue(frame.Value)
	}
	if c.entry.Text != frame.Label {
		c.entry.SetText(frame.Label)
	}
}

func (c *Controls) SetLabelHandler(handler func(string)) {
	c.labelHandler = handler
}

func (c *Controls) SetValueHandler(handler func(float64)) {
	c.valueHandler = handler
}

func (c *Controls) SetIncrementHandler(handler func()) {
	c.incrementHandler = handler
}

func (c *Controls) GetContainer() *fyne.Container {
	return c.container
}

func (c *Controls) Entry() *widget.Entry {
	return c.entry
}

func (c *Controls) Slider() *widget.Slider {
	return c.slider
}

func (c *Controls) Button() *widget.Button {
	return c.button
}

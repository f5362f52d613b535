package components

import (
	"image/color"

	"neurotic-crabs/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var (
	paintBackground = color.Gray{Y: 128}
	circleFill      = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
)

// PaintArea is a gray panel with a circle whose centre sits CircleOffsetX
// pixels right of the panel's top-left corner
type PaintArea struct {
	container  *fyne.Container
	background *canvas.Rectangle
	circle     *canvas.Circle
	clip       *container.Scroll
	centre     fyne.Position
	radius     float32
}

func NewPaintArea() *PaintArea {
	background := canvas.NewRectangle(paintBackground)
	background.SetMinSize(fyne.NewSize(200, 200))

	circle := canvas.NewCircle(circleFill)

	pa := &PaintArea{
		background: background,
		circle:     circle,
	}
	// A non-scrolling Scroll clips the circle to the panel bounds
	pa.clip = container.NewScroll(container.NewWithoutLayout(circle))
	pa.clip.Direction = container.ScrollNone

	pa.container = container.NewStack(background, pa.clip)
	pa.place(fyne.NewPos(0, 0), models.CircleRadius)
	return pa
}

// Render moves the circle to the frame's offset
func (pa *PaintArea) Render(frame models.Frame) {
	centre := fyne.NewPos(float32(frame.CircleOffsetX), 0)
	radius := float32(frame.CircleRadius)
	if centre == pa.centre && radius == pa.radius {
		return
	}
	pa.place(centre, radius)
	pa.circle.Refresh()
}

func (pa *PaintArea) place(centre fyne.Position, radius float32) {
	pa.centre = centre
	pa.radius = radius
	pa.circle.Move(centre.SubtractXY(radius, radius))
	pa.circle.Resize(fyne.NewSize(2*radius, 2*radius))
}

// Centre is the circle's centre relative to the panel origin
func (pa *PaintArea) Centre() fyne.Position {
	return pa.centre
}

func (pa *PaintArea) Circle() *canvas.Circle {
	return pa.circle
}

func (pa *PaintArea) GetContainer() *fyne.Container {
	return pa.container
}

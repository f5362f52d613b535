package components

import (
	"neurotic-crabs/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar is the top bar holding the dark/light theme switches
type Toolbar struct {
	container   *fyne.Container
	darkButton  *widget.Button
	lightButton *widget.Button
	active      models.ThemeVariant

	themeHandler func(models.ThemeVariant)
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}

	t.darkButton = widget.NewButtonWithIcon("Dark", theme.VisibilityOffIcon(), func() {
		t.selectTheme(models.ThemeDark)
	})
	t.lightButton = widget.NewButtonWithIcon("Light", theme.VisibilityIcon(), func() {
		t.selectTheme(models.ThemeLight)
	})

	t.container = container.NewHBox(t.darkButton, t.lightButton)
	return t
}

func (t *Toolbar) selectTheme(variant models.ThemeVariant) {
	t.SetActive(variant)
	if t.themeHandler != nil {
		t.themeHandler(variant)
	}
}

// SetActive highlights the button for the current variant
func (t *Toolbar) SetActive(variant models.ThemeVariant) {
	t.active = variant
	t.darkButton.Importance = widget.MediumImportance
	t.lightButton.Importance = widget.MediumImportance
	switch variant {
	case models.ThemeDark:
		t.darkButton.Importance = widget.HighImportance
	case models.ThemeLight:
		t.lightButton.Importance = widget.HighImportance
	}
	t.darkButton.Refresh()
	t.lightButton.Refresh()
}

func (t *Toolbar) Active() models.ThemeVariant {
	return t.active
}

// Importance reports the highlight of the dark and light buttons
func (t *Toolbar) Importance() (dark, light widget.Importance) {
	return t.darkButton.Importance, t.lightButton.Importance
}

func (t *Toolbar) SetThemeHandler(handler func(models.ThemeVariant)) {
	t.themeHandler = handler
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

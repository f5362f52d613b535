package models

// ThemeVariant selects the light or dark palette
type ThemeVariant int

const (
	ThemeSystem ThemeVariant = iota
	ThemeLight
	ThemeDark
)

func (v ThemeVariant) String() string {
	switch v {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "system"
	}
}

package render

// Theme names shared by the TUI palette and the markdown renderer. Both
// map directly onto glamour's built-in styles of the same name.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NormalizeStyle maps a theme name to a glamour style, falling back to
// the light style for unknown names.
func NormalizeStyle(theme string) string {
	switch theme {
	case ThemeLight, ThemeDark:
		return theme
	default:
		return ThemeLight
	}
}

// ToggleTheme returns the opposite theme name. Unknown names normalize
// to light, so their toggle is dark.
func ToggleTheme(theme string) string {
	if NormalizeStyle(theme) == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

package render

import "github.com/charmbracelet/lipgloss"

// TUITheme is the lipgloss palette driving the chat view. The TUI reads
// it through GetTUITheme and rebuilds its styles on every switch.
type TUITheme struct {
	Name string

	// Border frames panels and input chrome.
	Border lipgloss.Color

	// Primary marks assistant content, Secondary user content, Accent
	// the selection cursor and menus, Error alerts and failures.
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color

	// Body text in three emphasis steps.
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// tuiThemes holds the selectable palettes by theme name.
var tuiThemes = map[string]TUITheme{
	ThemeLight: {
		Name:      ThemeLight,
		Border:    lipgloss.Color("#d0d0d0"),
		Primary:   lipgloss.Color("#1a73e8"),
		Secondary: lipgloss.Color("#188038"),
		Accent:    lipgloss.Color("#9334e6"),
		Error:     lipgloss.Color("#d93025"),
		Text:      lipgloss.Color("#202124"),
		TextDim:   lipgloss.Color("#5f6368"),
		TextMute:  lipgloss.Color("#9aa0a6"),
	},
	ThemeDark: {
		Name:      ThemeDark,
		Border:    lipgloss.Color("#3e4451"),
		Primary:   lipgloss.Color("#61afef"),
		Secondary: lipgloss.Color("#98c379"),
		Accent:    lipgloss.Color("#c678dd"),
		Error:     lipgloss.Color("#e06c75"),
		Text:      lipgloss.Color("#abb2bf"),
		TextDim:   lipgloss.Color("#828997"),
		TextMute:  lipgloss.Color("#5c6370"),
	},
}

// currentTUITheme is the active palette. The bubbletea event loop is the
// only writer once the program starts.
var currentTUITheme = tuiThemes[ThemeLight]

// GetTUITheme returns the active TUI palette.
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme activates the named palette. Unknown names leave the
// active palette unchanged and report false.
func SetTUITheme(name string) bool {
	theme, ok := tuiThemes[name]
	if !ok {
		return false
	}
	currentTUITheme = theme
	return true
}

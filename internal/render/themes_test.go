package render

import "testing"

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		theme string
		want  string
	}{
		{ThemeLight, ThemeLight},
		{ThemeDark, ThemeDark},
		{"", ThemeLight},
		{"solarized", ThemeLight},
		{"LIGHT", ThemeLight},
	}
	for _, tt := range tests {
		if got := NormalizeStyle(tt.theme); got != tt.want {
			t.Errorf("NormalizeStyle(%q) = %q, want %q", tt.theme, got, tt.want)
		}
	}
}

func TestToggleTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  string
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
		{"", ThemeDark},
		{"solarized", ThemeDark},
	}
	for _, tt := range tests {
		if got := ToggleTheme(tt.theme); got != tt.want {
			t.Errorf("ToggleTheme(%q) = %q, want %q", tt.theme, got, tt.want)
		}
	}
}

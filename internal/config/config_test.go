package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("BackendURL = %q, want http://localhost:5000", cfg.BackendURL)
	}
	if cfg.TranslateURL != "https://api.sarvam.ai/translate" {
		t.Errorf("TranslateURL = %q", cfg.TranslateURL)
	}
	if cfg.SpeakerGender != "Female" {
		t.Errorf("SpeakerGender = %q, want Female", cfg.SpeakerGender)
	}
	if cfg.Verbose || cfg.CopyToClipboard {
		t.Error("Verbose and CopyToClipboard should default to false")
	}
	if !cfg.Markdown.EnableEmoji || !cfg.Markdown.PreserveNewLines || !cfg.Markdown.TableWrap {
		t.Errorf("Markdown defaults = %+v", cfg.Markdown)
	}
}

func TestConfigPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir: %v", err)
	}
	if filepath.Base(dir) != ".nexchat" {
		t.Errorf("config dir = %q, want a .nexchat directory", dir)
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	if path != filepath.Join(dir, "config.json") {
		t.Errorf("config path = %q", path)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat %s: %v", dir, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", dir)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("directory mode = %o, want 700", perm)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := DefaultConfig()
	in.Theme = "dark"
	in.BackendURL = "http://counsellor.example:8080"
	in.Verbose = true

	if err := SaveConfig(in); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	path, _ := GetConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	out, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", out, in)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should load defaults, got %+v", cfg)
	}
}

// writeConfigFile puts raw bytes where LoadConfig will look.
func writeConfigFile(t *testing.T, contents string) {
	t.Helper()
	dir, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeConfigFile(t, `{"theme": "dark", "speaker_gender": "Male"}`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Theme != "dark" || cfg.SpeakerGender != "Male" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.BackendURL != DefaultConfig().BackendURL {
		t.Errorf("BackendURL = %q, want default for a key absent from the file", cfg.BackendURL)
	}
	if !cfg.Markdown.TableWrap {
		t.Error("Markdown defaults should survive a partial file")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeConfigFile(t, `{"theme": not json`)

	cfg, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig should fail on malformed JSON")
	}
	if cfg != DefaultConfig() {
		t.Errorf("parse failure should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfig_UnknownTheme(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeConfigFile(t, `{"theme": "neon", "verbose": true}`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light fallback", cfg.Theme)
	}
	if !cfg.Verbose {
		t.Error("other fields should survive the theme fallback")
	}
}

func TestAvailableThemes(t *testing.T) {
	themes := AvailableThemes()
	if len(themes) != 2 {
		t.Fatalf("AvailableThemes() = %v, want two entries", themes)
	}
	for _, name := range themes {
		if !ValidTheme(name) {
			t.Errorf("ValidTheme(%q) = false for a listed theme", name)
		}
	}
}

func TestValidTheme(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"light", true},
		{"dark", true},
		{"Dark", false},
		{"neon", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidTheme(tc.name); got != tc.want {
			t.Errorf("ValidTheme(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

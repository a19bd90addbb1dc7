// Package config handles configuration and credential storage for nexchat.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Everything lives under ~/.nexchat next to the credentials file.
const (
	dirName    = ".nexchat"
	configFile = "config.json"
)

// Config is the persisted user configuration. The TUI writes a single
// field back at runtime, Theme, when the user toggles it.
type Config struct {
	// Theme selects the UI palette and the markdown style, "light" or
	// "dark". Unknown values fall back to "light" on load.
	Theme string `json:"theme"`
	// BackendURL is the base URL of the counsellor backend.
	BackendURL string `json:"backend_url"`
	// TranslateURL is the translation provider endpoint.
	TranslateURL string `json:"translate_url"`
	// SpeakerGender is sent with every translation request.
	SpeakerGender string `json:"speaker_gender"`
	// Verbose switches the log file to debug level.
	Verbose bool `json:"verbose"`
	// CopyToClipboard also copies one-shot replies to the clipboard.
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// MarkdownConfig tunes how assistant replies are rendered.
type MarkdownConfig struct {
	EnableEmoji      bool `json:"enable_emoji"`
	PreserveNewLines bool `json:"preserve_newlines"`
	TableWrap        bool `json:"table_wrap"`
	InlineTableLinks bool `json:"inline_table_links"`
}

// DefaultConfig returns the configuration used when nothing is on disk.
func DefaultConfig() Config {
	return Config{
		Theme:         "light",
		BackendURL:    "http://localhost:5000",
		TranslateURL:  "https://api.sarvam.ai/translate",
		SpeakerGender: "Female",
		Markdown: MarkdownConfig{
			EnableEmoji:      true,
			PreserveNewLines: true,
			TableWrap:        true,
		},
	}
}

// GetConfigDir returns the nexchat configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// EnsureConfigDir creates the configuration directory when missing. The
// directory is 0o700 because credentials live in it.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// GetConfigPath returns the path of the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// LoadConfig reads the configuration from disk. Fields absent from the
// file keep their defaults, and a missing file is not an error. A file
// that fails to parse yields the defaults alongside the error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// A hand-edited file may name a theme this build does not ship.
	if !ValidTheme(cfg.Theme) {
		cfg.Theme = DefaultConfig().Theme
	}
	return cfg, nil
}

// SaveConfig writes the configuration, creating the directory first.
func SaveConfig(cfg Config) error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// AvailableThemes lists the selectable theme names.
func AvailableThemes() []string {
	return []string{"light", "dark"}
}

// ValidTheme reports whether name is a selectable theme.
func ValidTheme(name string) bool {
	switch name {
	case "light", "dark":
		return true
	}
	return false
}

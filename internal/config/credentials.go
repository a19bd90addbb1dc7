package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnvTranslateKey overrides the stored translation API key when set.
const EnvTranslateKey = "NEXCHAT_TRANSLATE_KEY"

const credentialsFile = "credentials.json"

// Credentials holds secrets that must never live in config.json.
type Credentials struct {
	TranslateAPIKey string `json:"translate_api_key"`
}

// GetCredentialsPath returns the path of the credentials file.
func GetCredentialsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFile), nil
}

// LoadCredentials loads stored credentials from disk. A missing file is
// not an error; it yields empty credentials.
func LoadCredentials() (Credentials, error) {
	var creds Credentials

	path, err := GetCredentialsPath()
	if err != nil {
		return creds, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return creds, nil
	}
	if err != nil {
		return creds, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return creds, nil
}

// SaveCredentials writes credentials to disk, creating the directory
// first.
func SaveCredentials(creds Credentials) error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := GetCredentialsPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// 0o600: the file holds an API key.
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// ResolveTranslateKey returns the translation API key, preferring the
// environment override over the stored credentials. Returns "" when no
// key is configured anywhere.
func ResolveTranslateKey() string {
	if key := strings.TrimSpace(os.Getenv(EnvTranslateKey)); key != "" {
		return key
	}

	creds, err := LoadCredentials()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(creds.TranslateAPIKey)
}

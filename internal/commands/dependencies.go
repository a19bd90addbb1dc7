package commands

import (
	"os"

	"go.uber.org/zap"

	"github.com/ananth/nexchat/internal/api"
	"github.com/ananth/nexchat/internal/config"
	"github.com/ananth/nexchat/internal/notify"
	"github.com/ananth/nexchat/internal/translate"
)

// Dependencies holds the external collaborators for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Client is the backend chat client.
	Client api.ClientInterface

	// Translator is the translation adapter.
	Translator translate.Translator

	// Notifier reports non-fatal outcomes on stderr.
	Notifier notify.Notifier
}

// NewDependencies creates a Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Notifier: notify.NewWriter(os.Stderr),
	}
}

// deps is the package-wide dependency set; tests swap in mocks.
var deps = NewDependencies()

// resolveClient returns the injected client, or dials the configured
// backend. The returned cleanup is a no-op for injected clients.
func resolveClient(cfg config.Config, logger *zap.Logger) (api.ClientInterface, func(), error) {
	if deps.Client != nil {
		return deps.Client, func() {}, nil
	}

	client, err := api.NewClient(cfg.BackendURL, api.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// resolveTranslator returns the injected translator, or builds the real
// provider client from config and stored credentials.
func resolveTranslator(cfg config.Config, logger *zap.Logger) translate.Translator {
	if deps.Translator != nil {
		return deps.Translator
	}

	return translate.NewClient(
		translate.WithEndpoint(cfg.TranslateURL),
		translate.WithAPIKey(config.ResolveTranslateKey()),
		translate.WithSpeakerGender(cfg.SpeakerGender),
		translate.WithLogger(logger),
	)
}

// notifier returns the configured Notifier, never nil.
func notifier() notify.Notifier {
	if deps.Notifier != nil {
		return deps.Notifier
	}
	return notify.NewWriter(os.Stderr)
}

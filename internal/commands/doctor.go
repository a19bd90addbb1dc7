package commands

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ananth/nexchat/internal/api"
	"github.com/ananth/nexchat/internal/config"
	"github.com/ananth/nexchat/internal/logging"
	"github.com/ananth/nexchat/internal/speech"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local setup",
	Long: `Check the local setup: backend reachability, translation
credentials, and speech synthesizer availability.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout())
	},
}

// probeBackend reports whether the backend answers HTTP at base.
// Any response counts; the backend routes only POST endpoints.
var probeBackend = func(base string) error {
	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(base + "/")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// newSpeechEngine builds the engine doctor probes, injectable for tests.
var newSpeechEngine = func() *speech.Engine {
	return speech.NewEngine()
}

func runDoctor(w io.Writer) error {
	cfg := resolveConfig()

	// Config file
	if path, err := config.GetConfigPath(); err == nil {
		checkRow(w, true, "config", path)
	} else {
		checkRow(w, false, "config", err.Error())
	}

	// Backend URL validity and reachability
	client, err := api.NewClient(cfg.BackendURL)
	if err != nil {
		checkRow(w, false, "backend", fmt.Sprintf("%s (invalid: %v)", cfg.BackendURL, err))
	} else {
		client.Close()
		if err := probeBackend(cfg.BackendURL); err != nil {
			checkRow(w, false, "backend", fmt.Sprintf("%s (unreachable)", cfg.BackendURL))
		} else {
			checkRow(w, true, "backend", cfg.BackendURL)
		}
	}

	// Translation provider
	if cfg.TranslateURL == "" {
		checkRow(w, false, "translation", "no endpoint configured")
	} else if config.ResolveTranslateKey() == "" {
		checkRow(w, false, "translation", fmt.Sprintf("%s (no API key; run 'nexchat config set-key')", cfg.TranslateURL))
	} else {
		checkRow(w, true, "translation", cfg.TranslateURL)
	}

	// Speech synthesizer
	engine := newSpeechEngine()
	if engine.Available() {
		checkRow(w, true, "speech", engine.Program())
	} else {
		checkRow(w, false, "speech", "no synthesizer found (install espeak-ng, espeak, or flite)")
	}

	// Log file
	if dir, err := config.GetConfigDir(); err == nil {
		checkRow(w, true, "logs", filepath.Join(dir, "logs", logging.DefaultFileName))
	}

	return nil
}

// checkRow prints one doctor result line.
func checkRow(w io.Writer, ok bool, label, detail string) {
	mark := cliSuccessStyle.Render("✓")
	if !ok {
		mark = lipgloss.NewStyle().Foreground(cliDanger).Render("✗")
	}
	fmt.Fprintf(w, "%s %-12s %s\n", mark, label, detail)
}

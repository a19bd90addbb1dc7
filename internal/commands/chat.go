package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ananth/nexchat/internal/speech"
	"github.com/ananth/nexchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Open the full-screen chat view.

Replies stream in as they are generated, and every reply offers copy,
translate and speak actions. The backend keeps conversation context
between messages.

Leave with Esc, Ctrl+C, or by typing 'exit' or 'quit'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg := resolveConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	client, cleanup, err := resolveClient(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	translator := resolveTranslator(cfg, logger)
	engine := speech.NewEngine(speech.WithLogger(logger))

	if err := tui.RunChat(client, translator, engine, cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Chat session failed"))
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ananth/nexchat/internal/translate"
)

var translateToFlag string

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text through the configured provider",
	Long: `Translate text to one of the supported languages and print the result.

Text comes from the positional argument or from stdin.

Examples:
  nexchat translate --to ta "How are you feeling?"
  echo "Hello" | nexchat translate --to hi`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranslate(args)
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateToFlag, "to", "", "Target language code ("+strings.Join(translate.SupportedCodes(), ", ")+")")
	translateCmd.MarkFlagRequired("to")
}

func runTranslate(args []string) error {
	if !translate.IsSupported(translateToFlag) {
		return fmt.Errorf("unsupported language %q (supported: %s)",
			translateToFlag, strings.Join(translate.SupportedCodes(), ", "))
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("nothing to translate")
	}

	cfg := resolveConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	translator := resolveTranslator(cfg, logger)
	result, err := translator.Translate(context.Background(), text, translateToFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Translation failed"))
		return fmt.Errorf("translation failed: %w", err)
	}

	fmt.Println(result)
	return nil
}

package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ananth/nexchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and update configuration",
	Long: `Inspect and update the nexchat configuration file.

Examples:
  nexchat config show
  nexchat config set theme dark
  nexchat config set backend_url http://localhost:5000
  nexchat config path
  nexchat config set-key`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the translation API key",
	Long: `Store the translation API key in the credentials file.

The key is read from the terminal without echo (or from stdin when
piped). The ` + config.EnvTranslateKey + ` environment variable
overrides the stored key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSetKey()
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetKeyCmd)
}

func runConfigShow() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	keyState := "not set"
	if config.ResolveTranslateKey() != "" {
		keyState = "set"
	}

	fmt.Printf("theme:                        %s\n", cfg.Theme)
	fmt.Printf("backend_url:                  %s\n", cfg.BackendURL)
	fmt.Printf("translate_url:                %s\n", cfg.TranslateURL)
	fmt.Printf("speaker_gender:               %s\n", cfg.SpeakerGender)
	fmt.Printf("verbose:                      %t\n", cfg.Verbose)
	fmt.Printf("copy_to_clipboard:            %t\n", cfg.CopyToClipboard)
	fmt.Printf("markdown.enable_emoji:        %t\n", cfg.Markdown.EnableEmoji)
	fmt.Printf("markdown.preserve_newlines:   %t\n", cfg.Markdown.PreserveNewLines)
	fmt.Printf("markdown.table_wrap:          %t\n", cfg.Markdown.TableWrap)
	fmt.Printf("markdown.inline_table_links:  %t\n", cfg.Markdown.InlineTableLinks)
	fmt.Printf("translate API key:            %s\n", keyState)
	return nil
}

func runConfigSet(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := applyConfigValue(&cfg, key, value); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", key, value)
	return nil
}

// applyConfigValue sets one config field addressed by its JSON key.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "theme":
		if !config.ValidTheme(value) {
			return fmt.Errorf("invalid theme %q (available: %s)",
				value, strings.Join(config.AvailableThemes(), ", "))
		}
		cfg.Theme = value

	case "backend_url":
		cfg.BackendURL = value

	case "translate_url":
		cfg.TranslateURL = value

	case "speaker_gender":
		cfg.SpeakerGender = value

	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		cfg.Verbose = b

	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		cfg.CopyToClipboard = b

	case "markdown.enable_emoji", "markdown.preserve_newlines",
		"markdown.table_wrap", "markdown.inline_table_links":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		switch key {
		case "markdown.enable_emoji":
			cfg.Markdown.EnableEmoji = b
		case "markdown.preserve_newlines":
			cfg.Markdown.PreserveNewLines = b
		case "markdown.table_wrap":
			cfg.Markdown.TableWrap = b
		case "markdown.inline_table_links":
			cfg.Markdown.InlineTableLinks = b
		}

	default:
		return fmt.Errorf("unknown config key %q (known keys: theme, backend_url, "+
			"translate_url, speaker_gender, verbose, copy_to_clipboard, "+
			"markdown.enable_emoji, markdown.preserve_newlines, "+
			"markdown.table_wrap, markdown.inline_table_links)", key)
	}

	return nil
}

func runConfigSetKey() error {
	key, err := readSecret("Translation API key: ")
	if err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("no key entered")
	}

	if err := config.SaveCredentials(config.Credentials{TranslateAPIKey: key}); err != nil {
		return err
	}

	path, err := config.GetCredentialsPath()
	if err != nil {
		return err
	}
	notifier().Notice("Key saved to " + path)
	return nil
}

// readSecret reads a secret from the terminal without echo, falling
// back to a plain line read when stdin is piped.
func readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}
		return string(data), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return line, nil
}

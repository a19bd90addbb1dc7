// Package commands provides CLI commands for nexchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ananth/nexchat/internal/config"
	"github.com/ananth/nexchat/internal/logging"
	"go.uber.org/zap"
)

var (
	backendFlag string
	verboseFlag bool
	outputFlag  string
	fileFlag    string
	renderFlag  bool

	// Overridden via -ldflags on release builds.
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd doubles as a bare one-shot ask when given a message.
var rootCmd = &cobra.Command{
	Use:   "nexchat [message]",
	Short: "Terminal chat client for the counsellor backend",
	Long: `nexchat is a terminal client for a streaming counsellor backend.
Replies stream in token by token, and every reply can be copied,
translated, or spoken aloud from the chat view.

Examples:
  nexchat chat                        Start the interactive chat
  nexchat "I feel overwhelmed"        Send a single message
  nexchat -f prompt.txt               Read the message from a file
  cat prompt.txt | nexchat            Read the message from stdin
  nexchat "Hello" -o reply.txt        Save the reply to a file
  nexchat translate --to ta "Hello"   Translate a piece of text
  nexchat config show                 Inspect configuration
  nexchat doctor                      Check the local setup`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("nexchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		message, err := readInput(args)
		if err != nil {
			return err
		}
		if message == "" {
			return cmd.Help()
		}

		return runAsk(message)
	},
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose logging")

	// The one-shot flags sit on the root too, so 'nexchat "hi" -o f'
	// behaves exactly like 'nexchat ask "hi" -o f'.
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolVar(&renderFlag, "render", false, "Render the reply as markdown after it completes")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
}

// readInput resolves the message from --file, stdin, or the positional
// argument, in that order.
func readInput(args []string) (string, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return args[0], nil
	}
	return "", nil
}

// resolveConfig loads the config and applies flag overrides.
func resolveConfig() config.Config {
	cfg, _ := config.LoadConfig()
	if backendFlag != "" {
		cfg.BackendURL = backendFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	return cfg
}

// newLogger builds the file logger under the config directory. The TUI
// and the one-shot commands own the terminal, so diagnostics never go
// to stdout.
func newLogger(cfg config.Config) *zap.Logger {
	dir, err := config.GetConfigDir()
	if err != nil {
		return zap.NewNop()
	}
	return logging.NewFromConfigDir(dir, cfg.Verbose)
}

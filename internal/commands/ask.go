package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ananth/nexchat/internal/api"
	"github.com/ananth/nexchat/internal/config"
	apierrors "github.com/ananth/nexchat/internal/errors"
	"github.com/ananth/nexchat/internal/render"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send one message and print the reply",
	Long: `Send a single message to the counsellor backend and print the reply.

By default the reply streams to stdout as fragments arrive. With
--render the command waits for the full reply and prints it as
rendered markdown.

Examples:
  nexchat ask "How do I handle exam stress?"
  nexchat ask -f prompt.txt --render
  cat prompt.txt | nexchat ask
  nexchat ask "Hello" -o reply.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message, err := readInput(args)
		if err != nil {
			return err
		}
		return runAsk(message)
	},
}

func init() {
	askCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	askCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	askCmd.Flags().BoolVar(&renderFlag, "render", false, "Render the reply as markdown after it completes")
}

// runAsk executes a single message round trip and outputs the reply.
func runAsk(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("message cannot be empty")
	}

	cfg := resolveConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	client, cleanup, err := resolveClient(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if renderFlag {
		return runAskRendered(client, cfg, message)
	}
	return runAskStreaming(client, cfg, message)
}

// runAskStreaming prints reply fragments as they arrive. On a TTY a
// spinner runs until the first fragment lands.
func runAskStreaming(client api.ClientInterface, cfg config.Config, message string) error {
	decorated := isStdoutTTY() && outputFlag == ""

	var spin *spinner
	if isStdoutTTY() {
		spin = newSpinner("Waiting for reply")
		spin.start()
	}

	var reply strings.Builder
	started := false
	err := client.StreamMessage(context.Background(), message, func(fragment string) {
		if !started {
			started = true
			if spin != nil {
				spin.stopQuiet()
			}
		}
		reply.WriteString(fragment)
		if outputFlag == "" {
			fmt.Print(fragment)
		}
	})

	if err != nil {
		if spin != nil {
			spin.stopQuiet()
		}
		if started && outputFlag == "" {
			// Keep the partial reply readable before the error line.
			fmt.Println()
		}
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Request failed"))
		return fmt.Errorf("request failed: %w", err)
	}

	text := reply.String()

	if outputFlag != "" {
		if spin != nil {
			spin.stopWithSuccess("Done")
		}
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		notifier().Notice("Saved to " + outputFlag)
		return nil
	}

	if decorated {
		if !strings.HasSuffix(text, "\n") {
			fmt.Println()
		}
		if cfg.CopyToClipboard {
			copyReplyToClipboard(text)
		}
	}
	return nil
}

// runAskRendered waits for the complete reply, then prints it as a
// markdown bubble the way the chat view does.
func runAskRendered(client api.ClientInterface, cfg config.Config, message string) error {
	spin := newSpinner("Waiting for reply")
	spin.start()

	var reply strings.Builder
	err := client.StreamMessage(context.Background(), message, func(fragment string) {
		reply.WriteString(fragment)
	})

	if err != nil {
		spin.stopQuiet()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Request failed"))
		return fmt.Errorf("request failed: %w", err)
	}
	spin.stopWithSuccess("Done")

	text := reply.String()

	if cfg.CopyToClipboard {
		copyReplyToClipboard(text)
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		notifier().Notice("Saved to " + outputFlag)
		return nil
	}

	// Get terminal width for proper formatting
	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	label := replyLabelStyle.Render("✦ AI")
	fmt.Println(label)

	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth)
	rendered, rerr := render.Markdown(text, renderOpts)
	if rerr != nil {
		rendered = text
	}
	rendered = strings.TrimRight(rendered, "\n")

	bubble := replyBubbleStyle.Width(bubbleWidth).Render(rendered)
	fmt.Println(bubble)

	return nil
}

// copyReplyToClipboard copies text and reports the outcome on stderr.
func copyReplyToClipboard(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		notifier().Alert("failed to copy to clipboard: " + err.Error())
		return
	}
	notifier().Notice("Copied to clipboard")
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(cliDanger)
	dimStyle := cliDimStyle

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	// Extract additional context from structured errors
	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	// Show response body if available, otherwise a hint per error type
	if body := apierrors.GetResponseBody(err); body != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	} else {
		switch {
		case apierrors.IsNetworkError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Check that the backend is running ('nexchat doctor')"))
		case apierrors.IsTimeoutError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: The backend took too long to respond. Try again"))
		case apierrors.IsTranslateError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Check your translation API key ('nexchat config set-key')"))
		case apierrors.IsSpeechUnavailable(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Install espeak-ng (or espeak/flite) for speech output"))
		}
	}

	return sb.String()
}

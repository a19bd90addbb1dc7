package commands

import "github.com/charmbracelet/lipgloss"

// Fixed accent colors for one-shot output. Plain message text keeps the
// terminal's own foreground so it stays readable on any background.
var (
	cliAccent  = lipgloss.Color("#36a3ff")
	cliSuccess = lipgloss.Color("#2fa463")
	cliDanger  = lipgloss.Color("#e5484d")
	cliDim     = lipgloss.Color("#8b949e")
)

var (
	spinnerStyle    = lipgloss.NewStyle().Foreground(cliAccent).Bold(true)
	cliDimStyle     = lipgloss.NewStyle().Foreground(cliDim)
	cliSuccessStyle = lipgloss.NewStyle().Foreground(cliSuccess)

	// Rendered replies reuse the chat view's bubble look.
	replyLabelStyle  = lipgloss.NewStyle().Foreground(cliAccent).Bold(true)
	replyBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(cliAccent).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

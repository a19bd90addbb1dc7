// Package tui provides the terminal user interface for nexchat.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ananth/nexchat/internal/render"
)

// Styles for every screen region, rebuilt by UpdateTheme whenever the
// active palette changes. Render paths read these instead of building
// styles per frame.
var (
	// Chrome
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	// Transcript
	messagesAreaStyle    lipgloss.Style
	userLabelStyle       lipgloss.Style
	userBubbleStyle      lipgloss.Style
	assistantLabelStyle  lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	selectedBubbleStyle  lipgloss.Style
	loadingStyle         lipgloss.Style
	avatarStyle          lipgloss.Style

	// Input and status line
	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	statusInfoStyle lipgloss.Style

	// Welcome screen
	welcomeIconStyle  lipgloss.Style
	welcomeTitleStyle lipgloss.Style
	welcomeStyle      lipgloss.Style

	// Menu and alert overlays
	menuPanelStyle    lipgloss.Style
	menuTitleStyle    lipgloss.Style
	menuItemStyle     lipgloss.Style
	menuSelectedStyle lipgloss.Style
	menuCursorStyle   lipgloss.Style
	alertPanelStyle   lipgloss.Style
	alertTitleStyle   lipgloss.Style
	alertTextStyle    lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme rebuilds every style from the active TUI palette. Call it
// after render.SetTUITheme.
func UpdateTheme() {
	th := render.GetTUITheme()

	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 2).
		MarginBottom(1)
	titleStyle = lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(th.TextDim)
	hintStyle = lipgloss.NewStyle().Foreground(th.TextMute).Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(1)

	// User entries hug the right edge, assistant entries the left.
	userLabelStyle = lipgloss.NewStyle().Foreground(th.Secondary).Bold(true).MarginLeft(4)
	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Secondary).
		Padding(0, 1).
		MarginLeft(4)
	assistantLabelStyle = lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Primary).
		Foreground(th.Text).
		Padding(0, 1).
		MarginRight(4)
	selectedBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(th.Accent).
		Foreground(th.Text).
		Padding(0, 1)
	loadingStyle = lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	avatarStyle = lipgloss.NewStyle().Foreground(th.Accent).Bold(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1).
		MarginTop(1)
	inputLabelStyle = lipgloss.NewStyle().Foreground(th.Primary).Bold(true).MarginRight(1)
	statusBarStyle = lipgloss.NewStyle().Foreground(th.TextMute).MarginTop(1)
	statusKeyStyle = lipgloss.NewStyle().Foreground(th.TextDim).Bold(true)
	statusDescStyle = lipgloss.NewStyle().Foreground(th.TextMute)
	statusInfoStyle = lipgloss.NewStyle().Foreground(th.Secondary).MarginTop(1)

	welcomeIconStyle = lipgloss.NewStyle().Foreground(th.Accent).Align(lipgloss.Center)
	welcomeTitleStyle = lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Align(lipgloss.Center)
	welcomeStyle = lipgloss.NewStyle().Foreground(th.TextDim).Align(lipgloss.Center)

	menuPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Primary).
		Padding(1, 2)
	menuTitleStyle = lipgloss.NewStyle().Foreground(th.Text).Bold(true).MarginBottom(1)
	menuItemStyle = lipgloss.NewStyle().Foreground(th.Text).PaddingLeft(2)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Foreground(th.Accent)

	alertPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(th.Error).
		Padding(1, 2)
	alertTitleStyle = lipgloss.NewStyle().Foreground(th.Error).Bold(true).MarginBottom(1)
	alertTextStyle = lipgloss.NewStyle().Foreground(th.Text)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ananth/nexchat/internal/translate"
)

// Main menu entries in display order.
const (
	menuItemCopy = iota
	menuItemTranslate
	menuItemSpeak
	menuItemCount
)

var menuItemLabels = [menuItemCount]string{
	menuItemCopy:      "Copy",
	menuItemTranslate: "Translate ▸",
	menuItemSpeak:     "Speak",
}

// renderMenuBox renders the menu overlay box for the currently open message.
func (m Model) renderMenuBox() string {
	id := m.controller.OpenID()

	var content strings.Builder

	if m.controller.IsSubmenuOpen(id) {
		content.WriteString(menuTitleStyle.Render("Translate to"))
		content.WriteString("\n")

		codes := translate.SupportedCodes()
		for i, code := range codes {
			cursor := "  "
			style := menuItemStyle
			if i == m.submenuCursor {
				cursor = menuCursorStyle.Render("▸ ")
				style = menuSelectedStyle
			}
			content.WriteString(cursor + style.Render(translate.DisplayName(code)))
			content.WriteString("\n")
		}

		content.WriteString("\n")
		shortcuts := []string{
			statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Translate"),
			statusKeyStyle.Render("←") + statusDescStyle.Render(" Back"),
			statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Close"),
		}
		content.WriteString(strings.Join(shortcuts, "  │  "))
	} else {
		content.WriteString(menuTitleStyle.Render("Message actions"))
		content.WriteString("\n")

		for i := 0; i < menuItemCount; i++ {
			cursor := "  "
			style := menuItemStyle
			if i == m.menuCursor {
				cursor = menuCursorStyle.Render("▸ ")
				style = menuSelectedStyle
			}
			content.WriteString(cursor + style.Render(menuItemLabels[i]))
			content.WriteString("\n")
		}

		content.WriteString("\n")
		shortcuts := []string{
			statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Select"),
			statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Close"),
		}
		content.WriteString(strings.Join(shortcuts, "  │  "))
	}

	return menuPanelStyle.Render(content.String())
}

// renderMenuOverlay centers the menu box on the screen.
func (m Model) renderMenuOverlay() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderMenuBox())
}

// overlayRect returns the screen cells covered by the centered menu box.
// Mouse presses outside this rectangle dismiss all menus.
func (m Model) overlayRect() (x0, y0, x1, y1 int) {
	box := m.renderMenuBox()
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)

	x0 = (m.width - w) / 2
	y0 = (m.height - h) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	return x0, y0, x0 + w - 1, y0 + h - 1
}

// renderAlertOverlay renders the blocking alert box centered on the screen.
func (m Model) renderAlertOverlay() string {
	width := m.width - 16
	if width < 30 {
		width = 30
	}

	var content strings.Builder
	content.WriteString(alertTitleStyle.Render("⚠ Alert"))
	content.WriteString("\n")
	content.WriteString(alertTextStyle.Width(width).Render(m.alert))
	content.WriteString("\n\n")
	content.WriteString(hintStyle.Render("Press any key to dismiss"))

	box := alertPanelStyle.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("Welcome to NexChat")
	subtitle := welcomeStyle.Width(width).Render("Share what's on your mind to get started")
	hints := hintStyle.Width(width).Align(lipgloss.Center).Render("Tab focus  •  M menu  •  Ctrl+T theme")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
		hints,
	)

	// Center vertically
	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// truncate shortens s to the given display width, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

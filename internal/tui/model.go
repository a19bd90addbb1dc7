package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ananth/nexchat/internal/api"
	"github.com/ananth/nexchat/internal/chat"
	"github.com/ananth/nexchat/internal/config"
	"github.com/ananth/nexchat/internal/menu"
	"github.com/ananth/nexchat/internal/notify"
	"github.com/ananth/nexchat/internal/render"
	"github.com/ananth/nexchat/internal/speech"
	"github.com/ananth/nexchat/internal/translate"
)

// Placeholder shown in place of a message while its translation is in flight.
const translatingText = "Translating..."

// avatarLinger is how long the speech indicator stays visible after an
// utterance ends.
const avatarLinger = 800 * time.Millisecond

// focusArea identifies which pane receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Message types for the TUI
type (
	// streamEventMsg carries one event from a stream session's channel.
	streamEventMsg struct {
		id    string
		event chat.Event
		ok    bool
	}
	// speechEventMsg carries one lifecycle event from the speech engine.
	speechEventMsg struct {
		event speech.Event
		ok    bool
	}
	// hideAvatarMsg hides the speech indicator after the linger delay.
	hideAvatarMsg struct {
		gen int
	}
	// clearDoneMsg reports the backend clear call outcome.
	clearDoneMsg struct {
		err error
	}
	// feedbackMsg carries an action outcome from a bound menu action.
	feedbackMsg actionFeedback
)

type feedbackKind int

const (
	// feedbackStatus updates the transient status line.
	feedbackStatus feedbackKind = iota
	// feedbackAlert raises the blocking alert overlay.
	feedbackAlert
	// feedbackRefresh re-renders the viewport from the store.
	feedbackRefresh
	// feedbackTranslated delivers a finished translation.
	feedbackTranslated
)

// actionFeedback crosses from bound menu actions back into the event loop.
type actionFeedback struct {
	kind   feedbackKind
	id     string
	text   string
	prior  string
	result string
	err    error
}

// loopNotifier surfaces action outcomes through the event loop: notices
// land on the status line, alerts raise the blocking overlay.
type loopNotifier struct {
	feedback chan<- actionFeedback
}

var _ notify.Notifier = loopNotifier{}

// Alert implements notify.Notifier.
func (n loopNotifier) Alert(message string) {
	n.feedback <- actionFeedback{kind: feedbackAlert, text: message}
}

// Notice implements notify.Notifier.
func (n loopNotifier) Notice(message string) {
	n.feedback <- actionFeedback{kind: feedbackStatus, text: message}
}

// Model represents the TUI state. Domain state lives in the injected
// collaborators; the model projects it and routes input.
type Model struct {
	client     api.ClientInterface
	store      *chat.Store
	controller *menu.Controller
	bindings   *menu.Bindings
	translator translate.Translator
	speech     *speech.Engine
	cfg        config.Config
	logger     *zap.Logger

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// Rendering
	mdOpts render.Options

	// In-flight stream sessions keyed by pending message ID
	sessions map[string]*chat.Session

	// Outcomes of bound menu actions, pumped into the event loop
	feedback chan actionFeedback
	notifier notify.Notifier

	// Focus and selection
	focus    focusArea
	selected int

	// Menu cursors
	menuCursor    int
	submenuCursor int

	// Overlays
	alert  string
	status string

	// Speech avatar indicator
	avatarShown  bool
	speechActive bool
	avatarGen    int

	// Export target directory
	exportDir string

	// Clipboard write, injectable for tests
	clipboardWrite func(string) error

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewModel creates the chat TUI model.
func NewModel(client api.ClientInterface, translator translate.Translator, engine *speech.Engine, cfg config.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	render.SetTUITheme(cfg.Theme)
	UpdateTheme()

	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Share what's on your mind..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	theme := render.GetTUITheme()
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(theme.Text)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.TextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner for the typing indicator
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	feedback := make(chan actionFeedback, 8)

	return Model{
		client:         client,
		store:          chat.NewStore(),
		controller:     menu.NewController(),
		bindings:       menu.NewBindings(),
		translator:     translator,
		speech:         engine,
		cfg:            cfg,
		logger:         logger,
		textarea:       ta,
		spinner:        s,
		mdOpts:         render.OptionsFromConfig(cfg),
		sessions:       make(map[string]*chat.Session),
		feedback:       feedback,
		notifier:       loopNotifier{feedback: feedback},
		exportDir:      ".",
		clipboardWrite: clipboard.WriteAll,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		m.spinner.Tick,
		waitForFeedback(m.feedback),
	}
	if m.speech != nil {
		cmds = append(cmds, waitForSpeech(m.speech))
	}
	return tea.Batch(cmds...)
}

// startStream launches the session's run loop and waits for its first event.
func (m Model) startStream(sess *chat.Session, prompt string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		go sess.Run(context.Background(), client, prompt)
		ev, ok := <-sess.Events()
		return streamEventMsg{id: sess.MessageID(), event: ev, ok: ok}
	}
}

// waitForStream waits for the next event of an in-flight session.
func waitForStream(sess *chat.Session) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-sess.Events()
		return streamEventMsg{id: sess.MessageID(), event: ev, ok: ok}
	}
}

// waitForFeedback waits for the next bound-action outcome.
func waitForFeedback(ch <-chan actionFeedback) tea.Cmd {
	return func() tea.Msg {
		fb, ok := <-ch
		if !ok {
			return nil
		}
		return feedbackMsg(fb)
	}
}

// waitForSpeech waits for the next speech lifecycle event.
func waitForSpeech(engine *speech.Engine) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-engine.Events()
		return speechEventMsg{event: ev, ok: ok}
	}
}

// clearBackend fires the backend clear call once.
func clearBackend(client api.ClientInterface) tea.Cmd {
	return func() tea.Msg {
		return clearDoneMsg{err: client.ClearSession(context.Background())}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate component heights
		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case streamEventMsg:
		return m.handleStreamEvent(msg)

	case feedbackMsg:
		return m.handleFeedback(actionFeedback(msg))

	case speechEventMsg:
		return m.handleSpeechEvent(msg)

	case hideAvatarMsg:
		if msg.gen == m.avatarGen && !m.speechActive {
			m.avatarShown = false
		}

	case clearDoneMsg:
		if msg.err != nil {
			m.logger.Warn("backend clear failed", zap.Error(msg.err))
		}

	case spinner.TickMsg:
		if len(m.sessions) > 0 || m.speechActive {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			if len(m.sessions) > 0 {
				m.updateViewport()
			}
		}

	case tea.MouseMsg:
		if m.alert != "" {
			return m, nil
		}
		if isPress(msg) && m.controller.AnyOpen() {
			x0, y0, x1, y1 := m.overlayRect()
			if msg.X < x0 || msg.X > x1 || msg.Y < y0 || msg.Y > y1 {
				m.controller.CloseAll()
				m.updateViewport()
			}
			return m, nil
		}

	case tea.KeyMsg:
		// The blocking alert swallows everything until dismissed.
		if m.alert != "" {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.alert = ""
			return m, nil
		}

		if m.controller.AnyOpen() {
			return m.handleMenuKey(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, tea.Quit

		case "tab":
			return m.toggleFocus()

		case "ctrl+t":
			return m.toggleTheme()

		case "ctrl+e":
			return m.exportChat()

		case "ctrl+l":
			return m.clearChat()

		case "up", "down":
			if m.focus == focusList {
				return m.moveSelection(msg.String())
			}

		case "m":
			if m.focus == focusList {
				return m.toggleMenuForSelected()
			}

		case "enter":
			if m.focus == focusList {
				return m.toggleMenuForSelected()
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input != "" {
				if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
					return m, tea.Quit
				}
				return m.sendMessage(input)
			}
		}
	}

	// Update child components - only pass KeyMsg to textarea to prevent
	// escape sequence leaks
	if m.focus == focusInput {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// isPress reports whether the mouse event is a button press (not wheel).
func isPress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return false
	}
	return true
}

// sendMessage appends the user entry and a pending assistant entry, then
// starts the stream session. Overlapping sends each own their session.
func (m Model) sendMessage(input string) (tea.Model, tea.Cmd) {
	m.status = ""
	m.store.Append(chat.RoleUser, input)
	pending := m.store.Append(chat.RoleAssistant, "")

	sess := chat.NewSession(m.store, pending.ID)
	m.sessions[pending.ID] = sess

	m.textarea.Reset()
	m.selected = m.store.Len() - 1
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.startStream(sess, input), m.spinner.Tick)
}

// handleStreamEvent routes one session event.
func (m Model) handleStreamEvent(msg streamEventMsg) (tea.Model, tea.Cmd) {
	sess, tracked := m.sessions[msg.id]
	if !tracked {
		return m, nil
	}

	if !msg.ok {
		delete(m.sessions, msg.id)
		return m, nil
	}

	switch msg.event.Kind {
	case chat.EventFragment:
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, waitForStream(sess)

	case chat.EventDone:
		delete(m.sessions, msg.id)
		m.bindMessage(msg.id)
		m.updateViewport()
		m.viewport.GotoBottom()

	case chat.EventFailed:
		delete(m.sessions, msg.id)
		if msg.event.Err != nil {
			m.logger.Warn("stream failed",
				zap.String("message_id", msg.id),
				zap.Error(msg.event.Err))
		}
		// The apology text is a regular message with the regular menu.
		m.bindMessage(msg.id)
		m.updateViewport()
		m.viewport.GotoBottom()
	}

	return m, nil
}

// handleFeedback applies one bound-action outcome and re-arms the pump.
func (m Model) handleFeedback(fb actionFeedback) (tea.Model, tea.Cmd) {
	switch fb.kind {
	case feedbackStatus:
		m.status = fb.text

	case feedbackAlert:
		m.alert = fb.text

	case feedbackRefresh:
		m.updateViewport()

	case feedbackTranslated:
		if fb.err != nil {
			// Defensive failure: restore the exact prior text. The bound
			// action raises the alert right behind this message.
			m.store.SetText(fb.id, fb.prior)
			m.logger.Error("translation failed", zap.String("message_id", fb.id), zap.Error(fb.err))
		} else {
			if fb.result != fb.prior && !strings.HasPrefix(fb.result, translate.ErrorMarker) {
				m.store.SnapshotOriginal(fb.id, fb.prior)
			}
			m.store.SetText(fb.id, fb.result)
		}
		m.updateViewport()
	}

	return m, waitForFeedback(m.feedback)
}

// handleSpeechEvent projects speech lifecycle events onto the avatar state.
func (m Model) handleSpeechEvent(msg speechEventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}

	switch msg.event.Kind {
	case speech.EventStarted:
		m.avatarGen++
		m.avatarShown = true
		m.speechActive = true
		return m, tea.Batch(waitForSpeech(m.speech), m.spinner.Tick)

	case speech.EventEnded:
		m.speechActive = false
		gen := m.avatarGen
		hide := tea.Tick(avatarLinger, func(time.Time) tea.Msg {
			return hideAvatarMsg{gen: gen}
		})
		return m, tea.Batch(waitForSpeech(m.speech), hide)

	case speech.EventErrored:
		m.speechActive = false
		m.avatarShown = false
		m.avatarGen++
		if msg.event.Err != nil {
			m.logger.Warn("speech failed", zap.Error(msg.event.Err))
		}
		return m, waitForSpeech(m.speech)
	}

	return m, waitForSpeech(m.speech)
}

// handleMenuKey routes keys while a menu is open.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.controller.OpenID()
	submenu := m.controller.IsSubmenuOpen(id)

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.controller.CloseAll()
		m.updateViewport()

	case "up", "k":
		if submenu {
			m.submenuCursor--
			if m.submenuCursor < 0 {
				m.submenuCursor = len(translate.SupportedCodes()) - 1
			}
		} else {
			m.menuCursor--
			if m.menuCursor < 0 {
				m.menuCursor = menuItemCount - 1
			}
		}

	case "down", "j":
		if submenu {
			m.submenuCursor++
			if m.submenuCursor >= len(translate.SupportedCodes()) {
				m.submenuCursor = 0
			}
		} else {
			m.menuCursor++
			if m.menuCursor >= menuItemCount {
				m.menuCursor = 0
			}
		}

	case "left", "h":
		if submenu {
			m.controller.ToggleSubmenu(id)
		}

	case "m":
		if !submenu {
			m.controller.ToggleMain(id)
			m.updateViewport()
		}

	case "enter", " ":
		if submenu {
			codes := translate.SupportedCodes()
			if m.submenuCursor < len(codes) {
				if actions, ok := m.bindings.Get(id); ok && actions.Translate != nil {
					actions.Translate(id, codes[m.submenuCursor])
				}
			}
			m.controller.Close(id)
			m.updateViewport()
			return m, nil
		}

		switch m.menuCursor {
		case menuItemCopy:
			if actions, ok := m.bindings.Get(id); ok && actions.Copy != nil {
				actions.Copy(id)
			}
			m.controller.Close(id)
			m.updateViewport()

		case menuItemTranslate:
			m.submenuCursor = 0
			m.controller.ToggleSubmenu(id)

		case menuItemSpeak:
			if actions, ok := m.bindings.Get(id); ok && actions.Speak != nil {
				actions.Speak(id)
			}
			m.controller.Close(id)
			m.updateViewport()
		}
	}

	return m, nil
}

// toggleFocus switches key input between the textarea and the message list.
func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.textarea.Blur()
		if n := m.store.Len(); n > 0 {
			m.selected = n - 1
		}
		m.updateViewport()
		return m, nil
	}

	m.focus = focusInput
	cmd := m.textarea.Focus()
	m.updateViewport()
	return m, cmd
}

// moveSelection moves the message cursor while the list has focus.
func (m Model) moveSelection(key string) (tea.Model, tea.Cmd) {
	n := m.store.Len()
	if n == 0 {
		return m, nil
	}

	if key == "up" {
		m.selected--
		m.viewport.ScrollUp(3)
	} else {
		m.selected++
		m.viewport.ScrollDown(3)
	}
	m.clampSelection(n)
	m.updateViewport()
	return m, nil
}

// toggleMenuForSelected opens or closes the menu of the selected message.
func (m Model) toggleMenuForSelected() (tea.Model, tea.Cmd) {
	msgs := m.store.Messages()
	if m.selected < 0 || m.selected >= len(msgs) {
		return m, nil
	}

	target := msgs[m.selected]
	if target.Role != chat.RoleAssistant || !m.bindings.Has(target.ID) {
		return m, nil
	}

	m.menuCursor = 0
	m.submenuCursor = 0
	m.controller.ToggleMain(target.ID)
	m.updateViewport()
	return m, nil
}

// toggleTheme flips light/dark, rebuilds styles, and persists the choice.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := render.ToggleTheme(m.cfg.Theme)
	m.cfg.Theme = next

	render.SetTUITheme(next)
	UpdateTheme()
	m.mdOpts = render.OptionsFromConfig(m.cfg)
	m.updateViewport()

	if err := config.SaveConfig(m.cfg); err != nil {
		m.logger.Warn("failed to persist theme", zap.Error(err))
		m.status = "Theme: " + next + " (not saved)"
	} else {
		m.status = "Theme: " + next
	}
	return m, nil
}

// exportChat writes the transcript to a date-stamped file.
func (m Model) exportChat() (tea.Model, tea.Cmd) {
	path, err := chat.WriteExport(m.exportDir, m.store.Messages(), time.Now())
	if err != nil {
		m.logger.Error("export failed", zap.Error(err))
		m.status = "Export failed: " + err.Error()
		return m, nil
	}
	m.status = "Saved to " + path
	return m, nil
}

// clearChat empties the local store and fires the backend clear call once.
func (m Model) clearChat() (tea.Model, tea.Cmd) {
	m.store.Clear()
	m.bindings.Clear()
	m.controller.CloseAll()
	m.selected = 0
	m.status = "Chat cleared"
	m.updateViewport()
	return m, clearBackend(m.client)
}

// bindMessage installs the menu actions for a finished assistant message.
// Rebinding is an idempotent no-op; messages removed by clear-chat are
// never bound.
func (m *Model) bindMessage(id string) {
	if _, ok := m.store.Get(id); !ok {
		return
	}

	store := m.store
	translator := m.translator
	engine := m.speech
	logger := m.logger
	feedback := m.feedback
	notifier := m.notifier
	writeClipboard := m.clipboardWrite

	m.bindings.Bind(id, menu.Actions{
		Copy: func(id string) {
			msg, ok := store.Get(id)
			if !ok {
				return
			}
			if err := writeClipboard(msg.DisplayedText); err != nil {
				logger.Warn("clipboard copy failed", zap.Error(err))
				notifier.Notice("Copy failed (see logs)")
				return
			}
			notifier.Notice("Copied to clipboard")
		},

		Translate: func(id, code string) {
			msg, ok := store.Get(id)
			if !ok {
				return
			}
			prior := msg.DisplayedText
			store.SetText(id, translatingText)
			feedback <- actionFeedback{kind: feedbackRefresh}
			go func() {
				result, err := translator.Translate(context.Background(), prior, code)
				feedback <- actionFeedback{
					kind:   feedbackTranslated,
					id:     id,
					prior:  prior,
					result: result,
					err:    err,
				}
				if err != nil {
					// Restore lands first; sends on one channel keep order.
					notifier.Alert("Translation failed: " + err.Error())
				}
			}()
		},

		Speak: func(id string) {
			msg, ok := store.Get(id)
			if !ok {
				return
			}
			if err := engine.Speak(msg.DisplayedText); err != nil {
				logger.Info("speech unavailable", zap.Error(err))
				notifier.Notice("Speech unavailable: no synthesizer found")
			}
		},
	})
}

// clampSelection keeps the selection inside the message list.
func (m *Model) clampSelection(n int) {
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	msgs := m.store.Messages()
	m.clampSelection(len(msgs))
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range msgs {
		if i > 0 {
			content.WriteString("\n")
		}

		selected := m.focus == focusList && i == m.selected

		if msg.Role == chat.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			style := userBubbleStyle
			if selected {
				style = selectedBubbleStyle.MarginLeft(4)
			}
			bubble := style.Width(bubbleWidth).Render(msg.DisplayedText)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ AI")
			if msg.HasOriginal() {
				label += hintStyle.Render("  (translated)")
			}

			style := assistantBubbleStyle
			if selected {
				style = selectedBubbleStyle.MarginRight(4)
			}

			bubble := style.Width(bubbleWidth).Render(m.renderBody(msg))
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderBody renders one assistant message body. Replies still streaming
// show raw text (with a typing indicator before the first fragment);
// finished replies render as markdown.
func (m *Model) renderBody(msg chat.Message) string {
	if sess, active := m.sessions[msg.ID]; active {
		if sess.State() == chat.StatePending {
			return m.spinner.View()
		}
		return msg.DisplayedText
	}

	rendered, err := render.Markdown(msg.DisplayedText, m.mdOpts.WithWidth(m.viewport.Width-10))
	if err != nil {
		return msg.DisplayedText
	}
	return strings.TrimRight(rendered, "\n")
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.alert != "" {
		return m.renderAlertOverlay()
	}
	if m.controller.AnyOpen() {
		return m.renderMenuOverlay()
	}

	var sections []string
	contentWidth := m.width - 4

	sections = append(sections, m.renderHeader(contentWidth))

	var messagesContent string
	if m.store.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.textarea.View(),
	)
	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the top panel with title, backend, and avatar.
func (m Model) renderHeader(width int) string {
	parts := []string{
		titleStyle.Render("✦ NexChat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(truncate(m.client.BaseURL(), width/2)),
	}

	if m.avatarShown {
		indicator := "🔊"
		if m.speechActive {
			indicator = "🔊 " + m.spinner.View()
		}
		parts = append(parts,
			hintStyle.Render("  •  "),
			avatarStyle.Render(indicator),
		)
	}

	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return headerStyle.Width(width).Render(headerContent)
}

// renderStatusBar renders the bottom status bar with shortcuts or the
// transient status message.
func (m Model) renderStatusBar(width int) string {
	if m.status != "" {
		return statusInfoStyle.Width(width).Render(truncate(m.status, width))
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Tab", "Focus"},
		{"↑↓", "Select"},
		{"M", "Menu"},
		{"^T", "Theme"},
		{"^E", "Export"},
		{"^L", "Clear"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// RunChat starts the chat TUI
func RunChat(client api.ClientInterface, translator translate.Translator, engine *speech.Engine, cfg config.Config, logger *zap.Logger) error {
	m := NewModel(client, translator, engine, cfg, logger)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// Package chat holds the conversation state for nexchat: the ordered
// message store, streaming reply sessions, and transcript export.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrorReply replaces a streamed reply when the stream fails.
const ErrorReply = "Sorry, I encountered a connection error."

// Message is a single conversation entry.
type Message struct {
	ID   string
	Role string
	// DisplayedText is what the UI renders. Streaming appends to it and
	// translation overwrites it.
	DisplayedText string
	// OriginalText is the pre-translation text, captured on the first
	// successful translation and never overwritten after that.
	OriginalText string
	CreatedAt    time.Time
}

// NewMessage creates a message with a fresh ID.
func NewMessage(role, text string) Message {
	return Message{
		ID:            uuid.NewString(),
		Role:          role,
		DisplayedText: text,
		CreatedAt:     time.Now(),
	}
}

// HasOriginal reports whether the pre-translation text was captured.
func (m Message) HasOriginal() bool {
	return m.OriginalText != ""
}

package chat

import (
	"context"
	"sync"
)

// SessionState is the lifecycle stage of one streaming reply.
type SessionState int

const (
	// StatePending means the request was dispatched but no byte arrived.
	StatePending SessionState = iota
	// StateStreaming means at least one fragment landed.
	StateStreaming
	// StateDone means the stream ended cleanly.
	StateDone
	// StateFailed means the request or stream broke; the message text
	// was replaced with ErrorReply.
	StateFailed
)

// String returns the state name for logs.
func (s SessionState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateStreaming:
		return "streaming"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// EventKind identifies a session event.
type EventKind int

const (
	// EventFragment carries one decoded chunk of reply text.
	EventFragment EventKind = iota
	// EventDone is the clean terminal event.
	EventDone
	// EventFailed is the failure terminal event.
	EventFailed
)

// Event is one session notification delivered to the UI pump.
// Exactly one terminal event (done or failed) ends every session,
// after which the event channel is closed.
type Event struct {
	Kind     EventKind
	Fragment string
	Err      error
}

// Streamer is the slice of the backend client a session needs.
type Streamer interface {
	StreamMessage(ctx context.Context, message string, fn func(fragment string)) error
}

// Session drives one assistant reply: it owns the pending message,
// applies stream fragments to the store in arrival order, and feeds
// events to the UI. One session writes to exactly one message.
type Session struct {
	messageID string
	store     *Store

	mu    sync.Mutex
	state SessionState

	events chan Event
}

// NewSession creates a session for an already-appended assistant message.
func NewSession(store *Store, messageID string) *Session {
	return &Session{
		messageID: messageID,
		store:     store,
		state:     StatePending,
		events:    make(chan Event, 16),
	}
}

// MessageID returns the ID of the message this session fills.
func (s *Session) MessageID() string {
	return s.messageID
}

// State returns the current lifecycle stage.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Events returns the channel the UI pump consumes. It is closed after
// the terminal event.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Run issues the chat request and applies the stream until it ends.
// It blocks until the terminal event; run it on its own goroutine.
func (s *Session) Run(ctx context.Context, streamer Streamer, prompt string) {
	err := streamer.StreamMessage(ctx, prompt, func(fragment string) {
		s.applyFragment(fragment)
	})
	if err != nil {
		s.finish(StateFailed, Event{Kind: EventFailed, Err: err})
		return
	}
	s.finish(StateDone, Event{Kind: EventDone})
}

// applyFragment appends one fragment to the message and forwards it.
// Fragments are applied strictly in arrival order.
func (s *Session) applyFragment(fragment string) {
	s.mu.Lock()
	if s.state == StateDone || s.state == StateFailed {
		s.mu.Unlock()
		return
	}
	s.state = StateStreaming
	s.mu.Unlock()

	// Cleared mid-stream: the store ignores the write, the UI still
	// drains the event and finds nothing to render.
	s.store.AppendText(s.messageID, fragment)
	s.events <- Event{Kind: EventFragment, Fragment: fragment}
}

// finish applies the terminal event and closes the event channel.
func (s *Session) finish(state SessionState, ev Event) {
	s.mu.Lock()
	if s.state == StateDone || s.state == StateFailed {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.mu.Unlock()

	if state == StateFailed {
		// A broken stream never leaves a half-reply on screen.
		s.store.SetText(s.messageID, ErrorReply)
	}
	s.events <- ev
	close(s.events)
}

package chat

import "sync"

// Store is the ordered message list for one conversation. The TUI event
// loop is single-goroutine, but stream sessions append from worker
// goroutines, so every access goes through the lock.
//
// Mutators targeting an ID that no longer exists (cleared mid-stream)
// are silent no-ops. A late fragment for a removed message must never
// crash or resurrect it.
type Store struct {
	mu       sync.RWMutex
	messages []Message
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a new message at the end and returns a copy of it.
func (s *Store) Append(role, text string) Message {
	msg := NewMessage(role, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return msg
}

// AppendText appends a fragment to a message's displayed text.
// Returns false when the message is gone.
func (s *Store) AppendText(id, fragment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].DisplayedText += fragment
			return true
		}
	}
	return false
}

// SetText replaces a message's displayed text wholesale.
// Returns false when the message is gone.
func (s *Store) SetText(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].DisplayedText = text
			return true
		}
	}
	return false
}

// SnapshotOriginal records the pre-translation text for a message.
// Once set it is never overwritten; later calls are no-ops.
func (s *Store) SnapshotOriginal(id, original string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			if s.messages[i].OriginalText != "" {
				return false
			}
			s.messages[i].OriginalText = original
			return true
		}
	}
	return false
}

// Get returns a copy of the message with the given ID.
func (s *Store) Get(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			return s.messages[i], true
		}
	}
	return Message{}, false
}

// Messages returns a snapshot of all messages in order.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Clear removes every message. In-flight sessions keep running; their
// subsequent writes fall into the no-op path.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

package api

import (
	"context"
	"strings"
	"sync"

	apierrors "github.com/ananth/nexchat/internal/errors"
)

// MockClient is a mock implementation of ClientInterface for testing
// the UI layers without a backend. Configured fields are read-only once
// the mock is in use; recorders are guarded because stream callbacks
// run on worker goroutines.
type MockClient struct {
	// StreamFragments are emitted in order before StreamErr is returned
	StreamFragments []string
	// StreamErr is returned after the fragments (nil means clean end)
	StreamErr error
	// ClearErr is returned by ClearSession
	ClearErr error
	// BaseURLVal is returned by BaseURL
	BaseURLVal string

	mu          sync.Mutex
	streamCalls int
	clearCalls  int
	lastMessage string
	closeCalled bool
	closed      bool
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

// StreamMessage records the call and replays the configured fragments
func (m *MockClient) StreamMessage(ctx context.Context, message string, fn func(fragment string)) error {
	if strings.TrimSpace(message) == "" {
		return apierrors.ErrEmptyMessage
	}

	m.mu.Lock()
	m.streamCalls++
	m.lastMessage = message
	closed := m.closed
	m.mu.Unlock()

	if closed {
		return apierrors.ErrClientClosed
	}

	for _, fragment := range m.StreamFragments {
		fn(fragment)
	}
	return m.StreamErr
}

// ClearSession records the call and returns the configured error
func (m *MockClient) ClearSession(ctx context.Context) error {
	m.mu.Lock()
	m.clearCalls++
	m.mu.Unlock()
	return m.ClearErr
}

// BaseURL returns the configured value
func (m *MockClient) BaseURL() string {
	if m.BaseURLVal != "" {
		return m.BaseURLVal
	}
	return DefaultBaseURL
}

// Close records the call
func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalled = true
	m.closed = true
}

// IsClosed returns whether Close was called
func (m *MockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// StreamCalls returns how many times StreamMessage was called
func (m *MockClient) StreamCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streamCalls
}

// ClearCalls returns how many times ClearSession was called
func (m *MockClient) ClearCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCalls
}

// LastMessage returns the most recent message passed to StreamMessage
func (m *MockClient) LastMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMessage
}

// CloseCalled reports whether Close was invoked
func (m *MockClient) CloseCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalled
}

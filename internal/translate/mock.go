package translate

import (
	"context"
	"sync"
)

// Mock is a call-recording Translator for tests.
type Mock struct {
	// Result is returned when set; otherwise the input text echoes back
	Result string
	// Err is returned as the client-side failure path
	Err error

	mu         sync.Mutex
	calls      int
	lastText   string
	lastTarget string
}

var _ Translator = (*Mock)(nil)

// Translate records the call and returns the configured result
func (m *Mock) Translate(ctx context.Context, text, targetCode string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastText = text
	m.lastTarget = targetCode
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.Result != "" {
		return m.Result, nil
	}
	return text, nil
}

// Calls returns how many times Translate was called
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastText returns the most recent input text
func (m *Mock) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText
}

// LastTarget returns the most recent target code
func (m *Mock) LastTarget() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTarget
}

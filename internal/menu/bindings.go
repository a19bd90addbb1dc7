package menu

import "sync"

// Actions are the callbacks wired to one message's menu.
type Actions struct {
	// Copy copies the message text.
	Copy func(id string)
	// Translate converts the message to the language named by code.
	Translate func(id, code string)
	// Speak reads the message aloud.
	Speak func(id string)
}

// Bindings tracks which messages have menu actions attached. A message
// is bound once, when its reply finishes rendering; re-renders rebind
// the same ID and must not stack a second set of actions, so Bind keeps
// the first registration and reports the duplicate.
type Bindings struct {
	mu      sync.RWMutex
	actions map[string]Actions
}

// NewBindings creates an empty binding registry.
func NewBindings() *Bindings {
	return &Bindings{
		actions: make(map[string]Actions),
	}
}

// Bind attaches actions to a message. Returns false when the message
// was already bound; the original actions stay in place.
func (b *Bindings) Bind(id string, actions Actions) bool {
	if id == "" {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.actions[id]; exists {
		return false
	}

	b.actions[id] = actions
	return true
}

// Get returns the actions bound to id.
func (b *Bindings) Get(id string) (Actions, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	actions, exists := b.actions[id]
	return actions, exists
}

// Has reports whether id has menu actions attached.
func (b *Bindings) Has(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.actions[id]
	return exists
}

// Count returns the number of bound messages.
func (b *Bindings) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.actions)
}

// Unbind removes one message's binding.
func (b *Bindings) Unbind(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.actions, id)
}

// Clear removes every binding, for clear-chat.
func (b *Bindings) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.actions = make(map[string]Actions)
}

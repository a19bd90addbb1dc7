package menu

import (
	"sync"
	"testing"
)

func TestBindings_Bind(t *testing.T) {
	b := NewBindings()

	if b.Has("msg-1") {
		t.Error("new registry should have no bindings")
	}

	ok := b.Bind("msg-1", Actions{})
	if !ok {
		t.Error("first bind should succeed")
	}
	if !b.Has("msg-1") {
		t.Error("msg-1 should be bound")
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
}

func TestBindings_Bind_Idempotent(t *testing.T) {
	b := NewBindings()

	var firstCalls, secondCalls int
	b.Bind("msg-1", Actions{Copy: func(string) { firstCalls++ }})

	// A re-render rebinding the same message keeps the first actions.
	ok := b.Bind("msg-1", Actions{Copy: func(string) { secondCalls++ }})
	if ok {
		t.Error("second bind should report duplicate")
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}

	actions, exists := b.Get("msg-1")
	if !exists {
		t.Fatal("msg-1 should be bound")
	}
	actions.Copy("msg-1")

	if firstCalls != 1 {
		t.Errorf("first binding calls = %d, want 1", firstCalls)
	}
	if secondCalls != 0 {
		t.Errorf("second binding calls = %d, want 0 (must never stack)", secondCalls)
	}
}

func TestBindings_Bind_EmptyID(t *testing.T) {
	b := NewBindings()

	if b.Bind("", Actions{}) {
		t.Error("binding an empty id should fail")
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}
}

func TestBindings_Get_NotBound(t *testing.T) {
	b := NewBindings()

	_, exists := b.Get("nope")
	if exists {
		t.Error("Get should report missing binding")
	}
}

func TestBindings_Unbind(t *testing.T) {
	b := NewBindings()

	b.Bind("msg-1", Actions{})
	b.Unbind("msg-1")

	if b.Has("msg-1") {
		t.Error("msg-1 should be unbound")
	}

	// Unbinding twice is harmless.
	b.Unbind("msg-1")
}

func TestBindings_Clear(t *testing.T) {
	b := NewBindings()

	b.Bind("msg-1", Actions{})
	b.Bind("msg-2", Actions{})
	b.Clear()

	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}

	// Cleared IDs can be bound again.
	if !b.Bind("msg-1", Actions{}) {
		t.Error("rebinding after Clear should succeed")
	}
}

func TestBindings_ConcurrentBind(t *testing.T) {
	b := NewBindings()

	var wg sync.WaitGroup
	wins := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- b.Bind("msg-1", Actions{})
		}()
	}
	wg.Wait()
	close(wins)

	// Exactly one goroutine wins the bind.
	won := 0
	for ok := range wins {
		if ok {
			won++
		}
	}
	if won != 1 {
		t.Errorf("%d binds succeeded, want exactly 1", won)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
}

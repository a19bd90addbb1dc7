package tui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected unchanged, got %s", got)
	}

	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("expected truncated with ellipsis, got %s", got)
	}

	// Wide runes count as two cells.
	if got := truncate("日本語テスト", 5); got != "日本…" {
		t.Fatalf("expected cell-aware truncation, got %s", got)
	}

	if got := truncate("anything", 0); got != "" {
		t.Fatalf("expected empty for zero width, got %s", got)
	}
}

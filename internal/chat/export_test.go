package chat

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExportText(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, DisplayedText: "Hi"},
		{Role: RoleAssistant, DisplayedText: "Hello"},
	}

	got := ExportText(messages)
	want := "Chat Export\n==========\n\nUser: Hi\n\nAI: Hello\n\n"

	if got != want {
		t.Errorf("ExportText() = %q, want %q", got, want)
	}
}

func TestExportText_Empty(t *testing.T) {
	got := ExportText(nil)
	want := "Chat Export\n==========\n\n"

	if got != want {
		t.Errorf("ExportText(nil) = %q, want %q", got, want)
	}
}

func TestExportText_MultilineMessage(t *testing.T) {
	messages := []Message{
		{Role: RoleAssistant, DisplayedText: "line one\nline two"},
	}

	got := ExportText(messages)
	want := "Chat Export\n==========\n\nAI: line one\nline two\n\n"

	if got != want {
		t.Errorf("ExportText() = %q, want %q", got, want)
	}
}

func TestExportText_UsesDisplayedText(t *testing.T) {
	// A translated message exports what is on screen, not the original.
	messages := []Message{
		{Role: RoleAssistant, DisplayedText: "नमस्ते", OriginalText: "Hello"},
	}

	got := ExportText(messages)
	want := "Chat Export\n==========\n\nAI: नमस्ते\n\n"

	if got != want {
		t.Errorf("ExportText() = %q, want %q", got, want)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	got := ExportFilename(now)
	want := "chat_export_2025-03-14.txt"

	if got != want {
		t.Errorf("ExportFilename() = %s, want %s", got, want)
	}
}

func TestWriteExport(t *testing.T) {
	tmpDir := t.TempDir()
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	messages := []Message{
		{Role: RoleUser, DisplayedText: "Hi"},
		{Role: RoleAssistant, DisplayedText: "Hello"},
	}

	path, err := WriteExport(tmpDir, messages, now)
	if err != nil {
		t.Fatalf("WriteExport failed: %v", err)
	}

	if filepath.Base(path) != "chat_export_2025-03-14.txt" {
		t.Errorf("export path = %s, want chat_export_2025-03-14.txt", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}

	want := "Chat Export\n==========\n\nUser: Hi\n\nAI: Hello\n\n"
	if string(data) != want {
		t.Errorf("export content = %q, want %q", string(data), want)
	}
}

func TestWriteExport_BadDir(t *testing.T) {
	_, err := WriteExport("/nonexistent/path/here", nil, time.Now())
	if err == nil {
		t.Error("expected error for nonexistent directory")
	}
}

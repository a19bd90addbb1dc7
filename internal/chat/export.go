package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Export labels. User entries are labelled "User", assistant entries
// "AI", matching the transcript format counsellors already archive.
const (
	exportHeader         = "Chat Export\n==========\n\n"
	exportLabelUser      = "User"
	exportLabelAssistant = "AI"
)

// ExportText renders messages as a plain-text transcript:
//
//	Chat Export
//	==========
//
//	User: Hi
//
//	AI: Hello
//
// Every entry ends with a blank line, including the last one.
func ExportText(messages []Message) string {
	var sb strings.Builder
	sb.WriteString(exportHeader)

	for _, msg := range messages {
		label := exportLabelUser
		if msg.Role == RoleAssistant {
			label = exportLabelAssistant
		}
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(msg.DisplayedText)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// ExportFilename returns the date-stamped export file name, e.g.
// "chat_export_2025-03-14.txt".
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("chat_export_%s.txt", now.Format("2006-01-02"))
}

// WriteExport writes the transcript into dir and returns the full path.
func WriteExport(dir string, messages []Message, now time.Time) (string, error) {
	path := filepath.Join(dir, ExportFilename(now))

	if err := os.WriteFile(path, []byte(ExportText(messages)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

package commands

import "testing"

func TestChatCommand_Structure(t *testing.T) {
	if chatCmd.Use != "chat" {
		t.Errorf("Use = %s, want chat", chatCmd.Use)
	}
	if chatCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if chatCmd.RunE == nil {
		t.Error("RunE should be set")
	}
}

func TestChatCommand_InheritsGlobalFlags(t *testing.T) {
	// Persistent flags on the root reach the chat subcommand.
	for _, name := range []string{"backend", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %s not found", name)
		}
	}
}

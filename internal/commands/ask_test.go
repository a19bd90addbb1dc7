package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ananth/nexchat/internal/api"
	apierrors "github.com/ananth/nexchat/internal/errors"
)

func TestAskCommand_Structure(t *testing.T) {
	if askCmd.Use != "ask [message]" {
		t.Errorf("Use = %s, want 'ask [message]'", askCmd.Use)
	}
	for _, name := range []string{"output", "file", "render"} {
		if askCmd.Flags().Lookup(name) == nil {
			t.Errorf("Flag %s not found", name)
		}
	}
}

func TestRunAsk_EmptyMessage(t *testing.T) {
	setTempHome(t)

	if err := runAsk("   "); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestRunAsk_StreamsToStdout(t *testing.T) {
	setTempHome(t)
	mock := &api.MockClient{StreamFragments: []string{"Hel", "lo"}}
	injectClient(t, mock)

	out := captureStdout(t, func() {
		if err := runAsk("Hi"); err != nil {
			t.Errorf("runAsk failed: %v", err)
		}
	})

	if out != "Hello" {
		t.Errorf("stdout = %q, want %q", out, "Hello")
	}
	if mock.LastMessage() != "Hi" {
		t.Errorf("LastMessage = %q, want %q", mock.LastMessage(), "Hi")
	}
	if mock.StreamCalls() != 1 {
		t.Errorf("StreamCalls = %d, want 1", mock.StreamCalls())
	}
}

func TestRunAsk_OutputFile(t *testing.T) {
	setTempHome(t)
	mock := &api.MockClient{StreamFragments: []string{"Saved reply"}}
	injectClient(t, mock)
	rec := injectRecorder(t)

	outPath := filepath.Join(t.TempDir(), "reply.txt")
	origOutput := outputFlag
	defer func() { outputFlag = origOutput }()
	outputFlag = outPath

	out := captureStdout(t, func() {
		if err := runAsk("Hi"); err != nil {
			t.Errorf("runAsk failed: %v", err)
		}
	})

	if out != "" {
		t.Errorf("stdout = %q, want nothing when saving to a file", out)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if string(data) != "Saved reply" {
		t.Errorf("file content = %q, want %q", data, "Saved reply")
	}

	found := false
	for _, notice := range rec.Notices() {
		if strings.Contains(notice, outPath) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("notices = %v, want one naming %s", rec.Notices(), outPath)
	}
}

func TestRunAsk_StreamError(t *testing.T) {
	setTempHome(t)
	mock := &api.MockClient{
		StreamErr: apierrors.NewNetworkError("http://localhost:5000/chat", errors.New("connection refused")),
	}
	injectClient(t, mock)

	var runErr error
	stderr := captureStderr(t, func() {
		captureStdout(t, func() {
			runErr = runAsk("Hi")
		})
	})

	if runErr == nil {
		t.Fatal("expected error from a failed stream")
	}
	if !strings.Contains(runErr.Error(), "request failed") {
		t.Errorf("error = %v, want request failed wrapper", runErr)
	}
	if !strings.Contains(stderr, "Request failed") {
		t.Errorf("stderr = %q, want formatted error", stderr)
	}
	if !strings.Contains(stderr, "nexchat doctor") {
		t.Errorf("stderr = %q, want backend hint", stderr)
	}
}

func TestRunAsk_Rendered(t *testing.T) {
	setTempHome(t)
	mock := &api.MockClient{StreamFragments: []string{"# Heading\n\nBody text"}}
	injectClient(t, mock)

	origRender := renderFlag
	defer func() { renderFlag = origRender }()
	renderFlag = true

	var out string
	captureStderr(t, func() { // swallow the spinner frames
		out = captureStdout(t, func() {
			if err := runAsk("Hi"); err != nil {
				t.Errorf("runAsk failed: %v", err)
			}
		})
	})

	if !strings.Contains(out, "AI") {
		t.Errorf("output missing assistant label: %q", out)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("output missing rendered heading: %q", out)
	}
	if !strings.Contains(out, "Body text") {
		t.Errorf("output missing body: %q", out)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "plain error",
			err:      errors.New("boom"),
			contains: []string{"✗ Request failed: boom"},
		},
		{
			name:     "api error with body",
			err:      apierrors.NewAPIErrorWithBody(502, "http://localhost:5000/chat", "bad gateway", "upstream offline"),
			contains: []string{"HTTP Status: 502", "Endpoint: http://localhost:5000/chat", "upstream offline"},
		},
		{
			name:     "network error hint",
			err:      apierrors.NewNetworkError("http://localhost:5000/chat", errors.New("connection refused")),
			contains: []string{"backend is running", "nexchat doctor"},
		},
		{
			name:     "timeout hint",
			err:      apierrors.NewTimeoutError("deadline exceeded"),
			contains: []string{"took too long"},
		},
		{
			name:     "translate hint",
			err:      apierrors.NewTranslateError("https://translate.example/v1", "quota exhausted"),
			contains: []string{"config set-key"},
		},
		{
			name:     "speech hint",
			err:      apierrors.ErrSpeechUnavailable,
			contains: []string{"espeak-ng"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorMessage(tt.err, "Request failed")
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("formatErrorMessage = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestFormatErrorMessage_Nil(t *testing.T) {
	if got := formatErrorMessage(nil, "Request failed"); got != "" {
		t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
	}
}

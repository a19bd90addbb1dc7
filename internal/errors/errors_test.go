package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError(400, "test-endpoint", "test API error")

	if err == nil {
		t.Fatal("Expected non-nil error")
	}

	expected := "API error [400] at test-endpoint: test API error"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	// Without a status code the bracket section is omitted
	err = NewAPIError(0, "test-endpoint", "no status")
	expected = "API error at test-endpoint: no status"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	// Is matches on type, not on fields
	target := NewAPIError(500, "other", "target")
	if !err.Is(target) {
		t.Error("Expected error to match other APIError")
	}

	plain := errors.New("plain failure")
	if err.Is(plain) {
		t.Error("Expected error not to match a plain error")
	}
}

func TestAPIErrorWithBody(t *testing.T) {
	err := NewAPIErrorWithBody(502, "/chat", "bad gateway", "upstream offline")

	if err.Body != "upstream offline" {
		t.Errorf("Body = %s, want upstream offline", err.Body)
	}

	if got := GetResponseBody(err); got != "upstream offline" {
		t.Errorf("GetResponseBody() = %s, want upstream offline", got)
	}

	if got := GetResponseBody(errors.New("plain")); got != "" {
		t.Errorf("GetResponseBody() = %s, want empty", got)
	}
}

func TestNetworkError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewNetworkError("/chat", underlying)

	if err == nil {
		t.Fatal("Expected non-nil error")
	}

	expected := "network error reaching /chat: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	// Unwrap preserves the underlying error
	if !errors.Is(err, underlying) {
		t.Error("Expected NetworkError to unwrap to the underlying error")
	}

	// Matches the stream failure sentinel
	if !errors.Is(err, ErrStreamFailed) {
		t.Error("NetworkError should match ErrStreamFailed")
	}
}

func TestTimeoutError(t *testing.T) {
	err := NewTimeoutError("test timeout error")

	if err == nil {
		t.Fatal("Expected non-nil error")
	}

	expected := "request timed out: test timeout error"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	err = NewTimeoutError("")
	if err.Error() != "request timed out" {
		t.Errorf("Error() = %s, want request timed out", err.Error())
	}
}

func TestTranslateError(t *testing.T) {
	err := NewTranslateError("provider", "bad locale")

	if err == nil {
		t.Fatal("Expected non-nil error")
	}

	expected := "translation failed: bad locale"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrTranslationFailed) {
		t.Error("TranslateError should match ErrTranslationFailed")
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("unexpected token", "translated_text")

	if err == nil {
		t.Fatal("Expected non-nil error")
	}

	expected := "parse error: unexpected token"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	target := NewParseError("other", "reply")
	if !err.Is(target) {
		t.Error("Expected error to be parse error type")
	}

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}

	transErr := NewTranslateError("p", "t")
	if err.Is(transErr) {
		t.Error("Expected error not to match different type")
	}
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"network direct", NewNetworkError("/chat", errors.New("x")), IsNetworkError, true},
		{"network wrapped", fmt.Errorf("send: %w", NewNetworkError("/chat", errors.New("x"))), IsNetworkError, true},
		{"network plain", errors.New("x"), IsNetworkError, false},
		{"timeout direct", NewTimeoutError("slow"), IsTimeoutError, true},
		{"timeout context", context.DeadlineExceeded, IsTimeoutError, true},
		{"timeout plain", errors.New("x"), IsTimeoutError, false},
		{"translate direct", NewTranslateError("p", "m"), IsTranslateError, true},
		{"translate plain", errors.New("x"), IsTranslateError, false},
		{"speech sentinel", ErrSpeechUnavailable, IsSpeechUnavailable, true},
		{"speech wrapped", fmt.Errorf("speak: %w", ErrSpeechUnavailable), IsSpeechUnavailable, true},
		{"speech plain", errors.New("x"), IsSpeechUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	err := NewAPIError(429, "/chat", "too many requests")
	if got := GetHTTPStatus(err); got != 429 {
		t.Errorf("GetHTTPStatus() = %d, want 429", got)
	}

	wrapped := fmt.Errorf("send failed: %w", err)
	if got := GetHTTPStatus(wrapped); got != 429 {
		t.Errorf("GetHTTPStatus(wrapped) = %d, want 429", got)
	}

	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus(plain) = %d, want 0", got)
	}
}

func TestGetEndpoint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error", NewAPIError(500, "/chat", "boom"), "/chat"},
		{"network error", NewNetworkError("/clear", errors.New("x")), "/clear"},
		{"translate error", NewTranslateError("https://api.example.com/translate", "x"), "https://api.example.com/translate"},
		{"plain error", errors.New("x"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetEndpoint(tt.err); got != tt.want {
				t.Errorf("GetEndpoint() = %s, want %s", got, tt.want)
			}
		})
	}
}

package translate

import "testing"

func TestProviderLocale(t *testing.T) {
	tests := []struct {
		code string
		want string
		ok   bool
	}{
		{"hi", "hi-IN", true},
		{"ta", "ta-IN", true},
		{"te", "te-IN", true},
		{"en", "en-IN", true},
		{"fr", "", false},
		{"", "", false},
		{"HI", "", false}, // codes are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tag, ok := ProviderLocale(tt.code)
			if ok != tt.ok {
				t.Fatalf("ProviderLocale(%q) ok = %v, want %v", tt.code, ok, tt.ok)
			}
			if ok && tag.String() != tt.want {
				t.Errorf("ProviderLocale(%q) = %s, want %s", tt.code, tag.String(), tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range SupportedCodes() {
		if !IsSupported(code) {
			t.Errorf("IsSupported(%q) = false, want true", code)
		}
	}
	if IsSupported("de") {
		t.Error("IsSupported(de) = true, want false")
	}
}

func TestSupportedCodes_Order(t *testing.T) {
	want := []string{"hi", "ta", "te", "en"}
	got := SupportedCodes()

	if len(got) != len(want) {
		t.Fatalf("SupportedCodes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SupportedCodes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"hi", "Hindi"},
		{"ta", "Tamil"},
		{"te", "Telugu"},
		{"en", "English"},
		{"xx", "xx"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.code); got != tt.want {
			t.Errorf("DisplayName(%q) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain english",
			text: "Hello, how are you?",
			want: "en-IN",
		},
		{
			name: "devanagari",
			text: "नमस्ते, आप कैसे हैं?",
			want: "hi-IN",
		},
		{
			name: "tamil",
			text: "வணக்கம்",
			want: "ta-IN",
		},
		{
			name: "telugu",
			text: "నమస్కారం",
			want: "te-IN",
		},
		{
			name: "empty",
			text: "",
			want: "en-IN",
		},
		{
			name: "digits and punctuation",
			text: "1234 !?",
			want: "en-IN",
		},
		{
			name: "single devanagari rune in english text",
			text: "the word न appears here",
			want: "hi-IN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLocale(tt.text); got.String() != tt.want {
				t.Errorf("DetectLocale(%q) = %s, want %s", tt.text, got.String(), tt.want)
			}
		})
	}
}

func TestDetectLocale_Priority(t *testing.T) {
	// Devanagari outranks Tamil outranks Telugu, regardless of order
	// in the text.
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "tamil then devanagari",
			text: "வணக்கம் नमस्ते",
			want: "hi-IN",
		},
		{
			name: "telugu then tamil",
			text: "నమస్కారం வணக்கம்",
			want: "ta-IN",
		},
		{
			name: "telugu then devanagari",
			text: "నమస్కారం नमस्ते",
			want: "hi-IN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLocale(tt.text); got.String() != tt.want {
				t.Errorf("DetectLocale(%q) = %s, want %s", tt.text, got.String(), tt.want)
			}
		})
	}
}

package constants

import "testing"

func TestResolveModelID(t *testing.T) {
	cases := map[string]string{
		"grok3":             "x-ai/grok-3-beta",
		"gpt-4o":            "openai/gpt-4.1",
		"claude-3-7-sonnet": "anthropic/claude-3.7-sonnet",
		"gemini-1.5-pro":    "google/gemini-flash-1.5-8b",
	}
	for short, want := range cases {
		if got := ResolveModelID(short); got != want {
			t.Fatalf("ResolveModelID(%q) = %q, want %q", short, got, want)
		}
	}
}

func TestResolveModelIDUnknownFallsBack(t *testing.T) {
	if got := ResolveModelID("made-up-model"); got != DefaultModelID {
		t.Fatalf("expected default model for unknown short name, got %q", got)
	}
}

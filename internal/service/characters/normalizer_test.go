package characters

import (
	"testing"

	"go.uber.org/zap"

	"github.com/unicostudio/b-ai-localization/internal/domain"
)

func testTable() domain.CharacterTable {
	return domain.CharacterTable{
		"turkish": {
			"Lily":         "Bediş",
			"Lazy Larry":   "Tembel Temel",
			"Doctor Worry": "Doktor Endişe",
			"Uncle Bubba":  "Bubba Amca",
		},
	}
}

func newTestNormalizer() *Normalizer {
	return NewNormalizer(testTable(), zap.NewNop())
}

func TestNormalizeCanonicalName(t *testing.T) {
	n := newTestNormalizer()
	got := n.Normalize("Hello Lily!", "turkish")
	if got != "Hello Bediş!" {
		t.Fatalf("expected canonical replacement, got %q", got)
	}
}

func TestNormalizeIsCaseInsensitiveWholeWord(t *testing.T) {
	n := newTestNormalizer()
	if got := n.Normalize("say hi to LILY today", "turkish"); got != "say hi to Bediş today" {
		t.Fatalf("expected case-insensitive replacement, got %q", got)
	}
	// "Lilyfield" must not match; the variation is bounded by word edges.
	if got := n.Normalize("We visited Lilyfield", "turkish"); got != "We visited Lilyfield" {
		t.Fatalf("expected embedded name to survive, got %q", got)
	}
}

func TestNormalizeNicknameOfResolvedName(t *testing.T) {
	n := newTestNormalizer()
	if got := n.Normalize("Lilly looks happy", "turkish"); got != "Bediş looks happy" {
		t.Fatalf("expected nickname replacement, got %q", got)
	}
}

func TestNormalizeVariationPrecedence(t *testing.T) {
	n := newTestNormalizer()

	// The full name must be consumed as one unit before the shorter "lazy"
	// and "larry" variations get a chance at its fragments.
	if got := n.Normalize("Lazy Larry is sleeping", "turkish"); got != "Tembel Temel is sleeping" {
		t.Fatalf("expected full-name replacement, got %q", got)
	}
	if got := n.Normalize("larry naps while lazy", "turkish"); got != "Tembel Temel naps while Tembel Temel" {
		t.Fatalf("expected both short variations to resolve, got %q", got)
	}
}

func TestNormalizeHonorificVariations(t *testing.T) {
	n := newTestNormalizer()
	if got := n.Normalize("ask Doctor about it", "turkish"); got != "ask Doktor Endişe about it" {
		t.Fatalf("expected bare honorific replacement, got %q", got)
	}
	if got := n.Normalize("Worry is worried", "turkish"); got != "Doktor Endişe is worried" {
		t.Fatalf("expected last-name replacement, got %q", got)
	}
	if got := n.Normalize("Bubba waves", "turkish"); got != "Bubba Amca waves" {
		t.Fatalf("expected prefix-stripped replacement, got %q", got)
	}
}

func TestNormalizeUnknownLanguageIsNoOp(t *testing.T) {
	n := newTestNormalizer()
	text := "Hello Lily!"
	if got := n.Normalize(text, "klingon"); got != text {
		t.Fatalf("expected no-op for unknown language, got %q", got)
	}
}

func TestNormalizeEmptyText(t *testing.T) {
	n := newTestNormalizer()
	if got := n.Normalize("", "turkish"); got != "" {
		t.Fatalf("expected empty output for empty input, got %q", got)
	}
}

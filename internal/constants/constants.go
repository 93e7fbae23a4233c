package constants

import "time"

// ModelIDs maps user-facing short names to OpenRouter model identifiers.
// One table serves both the text and vision selectors; unknown keys resolve
// to DefaultModelID.
var ModelIDs = map[string]string{
	"grok3":             "x-ai/grok-3-beta",
	"gpt-4o":            "openai/gpt-4.1",
	"claude-3-7-sonnet": "anthropic/claude-3.7-sonnet",
	"gemini-1.5-pro":    "google/gemini-flash-1.5-8b",
}

const (
	DefaultModelID = "openai/gpt-4.1"
	VisionModelID  = "openai/chatgpt-4o-latest"
)

// ResolveModelID returns the OpenRouter ID for a short model name, falling
// back to DefaultModelID on unknown keys.
func ResolveModelID(shortName string) string {
	if id, ok := ModelIDs[shortName]; ok {
		return id
	}
	return DefaultModelID
}

var APIConfig = struct {
	OpenRouterBaseURL string
	Referer           string
	Title             string
	RequestTimeout    time.Duration
}{
	OpenRouterBaseURL: "https://openrouter.ai/api/v1",
	Referer:           "https://unicostudio.github.io/b-ai-localization/",
	Title:             "Game Localization Tool",
	RequestTimeout:    60 * time.Second,
}

var GenerationConfig = struct {
	VisionMaxTokens      int64
	VisionTemperature    float64
	LocalizeMaxTokens    int64
	LocalizeTemperature  float64
	DescriptionSentences int
}{
	VisionMaxTokens:      300,
	VisionTemperature:    0.2,
	LocalizeMaxTokens:    512,
	LocalizeTemperature:  0.3,
	DescriptionSentences: 5,
}

// Cooldown delays applied between image groups to stay under remote rate
// limits. The vision delay applies after any group that issued a describe
// call.
var CooldownConfig = struct {
	AfterVision   time.Duration
	AfterTextOnly time.Duration
}{
	AfterVision:   1500 * time.Millisecond,
	AfterTextOnly: 1000 * time.Millisecond,
}

var RetryConfig = struct {
	VisionMaxRetries int
	RetryDelay       time.Duration
}{
	VisionMaxRetries: 2,
	RetryDelay:       2 * time.Second,
}

var CacheTTL = struct {
	Localization time.Duration
}{
	Localization: 24 * time.Hour,
}

// DescriptionErrorSentinel is stored in place of a vision description when
// the describe call fails. Processing continues; no image is skipped for
// lack of description.
const DescriptionErrorSentinel = "Error getting image description"

const (
	// MissingTranslationPrefix marks English fallbacks in the per-language
	// output tables.
	MissingTranslationPrefix = "[MISSING TRANSLATION] "

	// OCR is intentionally not performed; the full-format schema keeps the
	// field for downstream compatibility.
	OCRPlaceholder         = "[OCR functionality disabled to avoid dependency issues]"
	OCRPlaceholderNotFound = "[OCR text not available - image not found]"
)

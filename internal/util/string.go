package util

import (
	"strings"
	"unicode"
)

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// Capitalize upper-cases the first rune of s ("turkish" -> "Turkish").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Contains checks if a string slice contains a specific item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// SplitSentences splits prose on sentence-ending punctuation followed by
// whitespace. Used to clamp vision descriptions to a sentence budget.
func SplitSentences(s string) []string {
	var sentences []string
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if trimmed := strings.TrimSpace(b.String()); trimmed != "" {
					sentences = append(sentences, trimmed)
				}
				b.Reset()
			}
		}
	}
	if trimmed := strings.TrimSpace(b.String()); trimmed != "" {
		sentences = append(sentences, trimmed)
	}
	return sentences
}

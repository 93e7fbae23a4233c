package output

import (
	"regexp"
	"strings"
)

// Model responses carry commentary the game client must never see. The
// cleaning rules below are ordered data: patterns whose matches are erased,
// then markers that truncate the string, then character-level scrubbing.
// Editing the lists changes behavior; the code never needs to.

var explanationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Explanation:.*`),
	regexp.MustCompile(`Note:.*`),
	regexp.MustCompile(`\(Note:.*`),
	regexp.MustCompile(`- This.*`),
	regexp.MustCompile(`- ".*" is.*`),
	regexp.MustCompile(`\*\(Note:.*`),
	regexp.MustCompile(`\*\*German:\*\*.*`),
	regexp.MustCompile(`German:.*`),
	regexp.MustCompile(`> Explanation:.*`),
	regexp.MustCompile(`\(Literal:.*`),
}

// cutoffMarkers truncate everything from the first occurrence onward.
var cutoffMarkers = []string{
	"**German:**",
	"### German:",
	"- Explanation:",
	"Explanation:",
	"### Notes:",
	"✅ Notes:",
	"*(Note:",
	"---",
	"✅",
	" - ",
	" > ",
	` - "`,
}

var (
	surroundingQuotes = regexp.MustCompile(`^\s*"(.*)"\s*$`)
	edgeQuotes        = regexp.MustCompile(`^["']|["']$`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
)

// CleanText strips model commentary and markdown noise from a localized
// string. Applying it to already-clean text returns the text unchanged.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := text
	for _, pattern := range explanationPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	for _, marker := range cutoffMarkers {
		if idx := strings.Index(cleaned, marker); idx != -1 {
			cleaned = cleaned[:idx]
		}
	}

	cleaned = strings.ReplaceAll(cleaned, "*", "")
	cleaned = strings.ReplaceAll(cleaned, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	cleaned = surroundingQuotes.ReplaceAllString(cleaned, "$1")
	cleaned = edgeQuotes.ReplaceAllString(cleaned, "")

	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

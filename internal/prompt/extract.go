package prompt

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// The model answers in free-form prose with language names as section labels
// ("Turkish: ..."). Label shapes and cutoff markers are configuration data
// rather than parser logic so new model quirks can be handled by extending
// the lists.

// labelTemplates are tried in order for each requested language; %s is the
// language name. The capture runs to the next blank-line separated capitalized
// section label or end of text.
var labelTemplates = []string{
	`(?s)(?i:%s)\s*:\s*(.+?)(?:\n\n[A-Z*#]|$)`,
	`(?s)(?i:\*\*%s\*\*)\s*:?\s*(.+?)(?:\n\n[A-Z*#]|$)`,
}

// textPrefixMarkers are stripped from the front of an extracted section.
var textPrefixMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\*\*Text:\*\*\s*`),
	regexp.MustCompile(`^\s*Localization:\*\*\s*`),
}

// explanationMarkers truncate a section at the first trailing commentary
// block the model appended despite instructions.
var explanationMarkers = []string{
	"**Explanation:",
	"\n\n**Explanation:",
	"\n\nExplanation:",
	"**Note:",
}

// ExtractionPlaceholder is stored when a requested language section is
// missing from the response; downstream consumers never see a blank.
func ExtractionPlaceholder(languageName string) string {
	return fmt.Sprintf("Could not extract %s localization", languageName)
}

// Extractor parses per-language sections out of model prose. Compiled label
// patterns are cached per language name.
type Extractor struct {
	mu       sync.RWMutex
	patterns map[string][]*regexp.Regexp
}

func NewExtractor() *Extractor {
	return &Extractor{patterns: make(map[string][]*regexp.Regexp)}
}

// Sections returns one string per requested language name. A missing section
// yields the explicit extraction placeholder, never an absent key.
func (e *Extractor) Sections(responseText string, languageNames []string) map[string]string {
	sections := make(map[string]string, len(languageNames))
	for _, lang := range languageNames {
		section, ok := e.section(responseText, lang)
		if !ok {
			sections[lang] = ExtractionPlaceholder(lang)
			continue
		}
		sections[lang] = cleanSection(section)
	}
	return sections
}

func (e *Extractor) section(responseText, languageName string) (string, bool) {
	for _, pattern := range e.labelPatterns(languageName) {
		if match := pattern.FindStringSubmatch(responseText); match != nil {
			return match[1], true
		}
	}
	return "", false
}

func (e *Extractor) labelPatterns(languageName string) []*regexp.Regexp {
	e.mu.RLock()
	patterns, ok := e.patterns[languageName]
	e.mu.RUnlock()
	if ok {
		return patterns
	}

	quoted := regexp.QuoteMeta(languageName)
	patterns = make([]*regexp.Regexp, 0, len(labelTemplates))
	for _, tmpl := range labelTemplates {
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(tmpl, quoted)))
	}

	e.mu.Lock()
	e.patterns[languageName] = patterns
	e.mu.Unlock()
	return patterns
}

func cleanSection(section string) string {
	text := strings.TrimSpace(section)

	for _, marker := range textPrefixMarkers {
		text = marker.ReplaceAllString(text, "")
	}

	for _, marker := range explanationMarkers {
		if idx := strings.Index(text, marker); idx != -1 {
			text = text[:idx]
		}
	}

	return strings.TrimSpace(text)
}

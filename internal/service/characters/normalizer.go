// Package characters rewrites English character names and their aliases in
// localized text to the target language's canonical localized form. The
// model is told to leave names untranslated; this pass is the one place
// names change.
package characters

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/unicostudio/b-ai-localization/internal/domain"
	"go.uber.org/zap"
)

// namePrefixes are honorifics/qualifiers that may precede the distinctive
// part of a multi-word name.
var namePrefixes = []string{"doctor", "dr", "uncle", "aunt", "granny", "grandmother", "lazy", "little", "the"}

// distinctivePrefixes are honorifics characters are commonly addressed by on
// their own ("Doctor", "Granny").
var distinctivePrefixes = []string{"doctor", "dr", "granny", "uncle"}

// nicknames is a hand-authored table of common misspellings and shortened
// forms per canonical lowercase name. Applied only when the base name
// already resolved through the character table.
var nicknames = map[string][]string{
	"lily":         {"lilly", "lillie", "lil"},
	"larry":        {"lary", "larrry", "larrie"},
	"doctor worry": {"dr worry", "doc worry", "doctor", "dr", "worry"},
	"granny amy":   {"granny", "grandma amy", "grandmother amy", "amy"},
	"uncle bubba":  {"bubba", "uncle"},
	"bubba":        {"buba", "bubber", "bubbah"},
	"astrodog":     {"astro dog", "astro", "space dog"},
	"martian":      {"the martian"},
	"rockhead":     {"the rockhead", "rock head", "rock"},
	"jenny":        {"jen", "jenn", "jennie"},
	"judy":         {"judi", "judie"},
	"gymmy":        {"jimmy", "jimy", "gym"},
	"little tiki":  {"tiki", "little"},
	"lazy larry":   {"lazy", "larry"},
}

// minVariationLen guards against indexing short fragments that would collide
// with common words.
const minVariationLen = 3

type replacement struct {
	pattern   *regexp.Regexp
	localized string
}

// Normalizer owns the per-language variation indexes. The character table is
// immutable, so a language's index is a pure function of it: built lazily on
// first use and cached.
type Normalizer struct {
	table  domain.CharacterTable
	logger *zap.Logger

	mu      sync.RWMutex
	indexes map[string][]replacement
}

func NewNormalizer(table domain.CharacterTable, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		table:   table,
		logger:  logger,
		indexes: make(map[string][]replacement),
	}
}

// Normalize rewrites whole-word, case-insensitive occurrences of every known
// variation to the localized name, longest variation first so a specific
// match is never pre-empted by a shorter generic one. No-op when the text is
// empty or the language has no character data. Never fails.
func (n *Normalizer) Normalize(text, languageName string) string {
	if text == "" {
		return text
	}
	if _, ok := n.table[languageName]; !ok {
		return text
	}

	result := text
	for _, rep := range n.index(languageName) {
		result = rep.pattern.ReplaceAllString(result, rep.localized)
	}
	return result
}

func (n *Normalizer) index(languageName string) []replacement {
	n.mu.RLock()
	idx, ok := n.indexes[languageName]
	n.mu.RUnlock()
	if ok {
		return idx
	}

	idx = buildIndex(n.table[languageName])

	n.mu.Lock()
	// A concurrent first use may have built the same index already; both
	// builds are identical, last write wins.
	n.indexes[languageName] = idx
	n.mu.Unlock()

	if n.logger != nil {
		n.logger.Debug("Built character variation index",
			zap.String("language", languageName),
			zap.Int("variations", len(idx)),
		)
	}
	return idx
}

// buildIndex derives every variation -> localized name mapping for one
// language, sorted by descending variation length.
func buildIndex(charData map[string]string) []replacement {
	variationMap := make(map[string]string)

	for englishName, localizedName := range charData {
		lower := strings.ToLower(englishName)
		variationMap[lower] = localizedName

		parts := strings.Fields(englishName)
		if len(parts) < 2 {
			continue
		}

		lastName := parts[len(parts)-1]
		if len(lastName) > minVariationLen {
			variationMap[strings.ToLower(lastName)] = localizedName
		}

		prefix := strings.ToLower(parts[0])
		if !containsString(namePrefixes, prefix) {
			continue
		}

		withoutPrefix := strings.Join(parts[1:], " ")
		if len(withoutPrefix) > minVariationLen {
			variationMap[strings.ToLower(withoutPrefix)] = localizedName
		}
		if containsString(distinctivePrefixes, prefix) {
			variationMap[prefix] = localizedName
		}
		if prefix == "the" {
			variationMap[strings.ToLower(withoutPrefix)] = localizedName
		}
	}

	// Nicknames only map through names the table already resolved.
	for base, aliases := range nicknames {
		localized, ok := variationMap[base]
		if !ok {
			continue
		}
		for _, alias := range aliases {
			variationMap[strings.ToLower(alias)] = localized
		}
	}

	variations := make([]string, 0, len(variationMap))
	for v := range variationMap {
		variations = append(variations, v)
	}
	sort.Slice(variations, func(i, j int) bool {
		if len(variations[i]) != len(variations[j]) {
			return len(variations[i]) > len(variations[j])
		}
		return variations[i] < variations[j]
	})

	index := make([]replacement, 0, len(variations))
	for _, variation := range variations {
		index = append(index, replacement{
			pattern:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(variation) + `\b`),
			localized: variationMap[variation],
		})
	}
	return index
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

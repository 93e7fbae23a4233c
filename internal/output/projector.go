package output

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/unicostudio/b-ai-localization/internal/constants"
	"github.com/unicostudio/b-ai-localization/internal/domain"
)

// NameNormalizer rewrites character names into their localized forms.
type NameNormalizer interface {
	Normalize(text, languageName string) string
}

// keyMappings renames LocID prefixes to the key names the game client reads.
var keyMappings = map[string]string{
	"LEVEL_TEXT": "question",
	"HINT":       "hint",
	"END":        "endText",
}

// singleSequenceKeys produce type_seq1 keys; everything else gets
// type_seq1_seq2.
var singleSequenceKeys = map[string]bool{
	"LEVEL_TEXT": true,
	"END":        true,
}

// locIDPattern splits a LocID into its base key and up to two numeric
// sequence suffixes, e.g. LEVEL_TEXT_1 or HINT_3_2.
var locIDPattern = regexp.MustCompile(`^([A-Z_]+?)(?:_(\d+))?(?:_(\d+))?$`)

// Projector renders run results into the two supported output shapes: the
// full per-item JSON array and flat per-language string tables.
type Projector struct {
	normalizer NameNormalizer
}

// NewProjector builds a projector. normalizer may be nil, in which case
// table text is emitted without character name rewriting.
func NewProjector(normalizer NameNormalizer) *Projector {
	return &Projector{normalizer: normalizer}
}

// FullJSON marshals the results as the full format: one object per image
// with filename, description and OCR_EN metadata plus a sub-object per
// LocID holding the English source and each localized string.
func (p *Projector) FullJSON(results []*domain.ItemResult) ([]byte, error) {
	if results == nil {
		results = []*domain.ItemResult{}
	}
	return json.MarshalIndent(results, "", "  ")
}

// LanguageTables flattens results into one key/value table per language.
// Keys are synthesized from LocIDs: the base key is renamed via keyMappings,
// the first sequence defaults to the 1-based item position and the second to
// "1". A missing translation with English present becomes the English text
// behind a [MISSING TRANSLATION] marker, so no requested language ever loses
// a key that English has. The returned map always carries an "EN" table plus
// one table per requested language name, even when results are empty.
func (p *Projector) LanguageTables(results []*domain.ItemResult, languageNames []string) map[string]map[string]string {
	tables := make(map[string]map[string]string, len(languageNames)+1)
	tables["EN"] = make(map[string]string)
	for _, name := range languageNames {
		tables[name] = make(map[string]string)
	}

	for itemIndex, item := range results {
		position := itemIndex + 1

		for _, locID := range item.EntryOrder {
			entry := item.Entries[locID]
			if entry == nil {
				continue
			}

			key, ok := synthesizeKey(locID, position)
			if !ok {
				// Unparseable LocIDs keep their own name, lowercased, and
				// only carry languages that actually produced text.
				key = strings.ToLower(locID)
				if entry.English != "" {
					tables["EN"][key] = p.finalize(entry.English, "english")
				}
				for _, name := range languageNames {
					if text := entry.PerLanguage[name]; text != "" {
						tables[name][key] = p.finalize(text, name)
					}
				}
				continue
			}

			if entry.English != "" {
				tables["EN"][key] = p.finalize(entry.English, "english")
			}
			for _, name := range languageNames {
				text := entry.PerLanguage[name]
				switch {
				case text != "":
					tables[name][key] = p.finalize(text, name)
				case entry.English != "":
					tables[name][key] = constants.MissingTranslationPrefix + CleanText(entry.English)
				}
			}
		}
	}

	return tables
}

// finalize cleans the raw text and re-applies character name normalization.
// Cleaning can merge words around stripped markup, so names are rewritten
// again on the cleaned form.
func (p *Projector) finalize(text, languageName string) string {
	cleaned := CleanText(text)
	if p.normalizer == nil {
		return cleaned
	}
	return p.normalizer.Normalize(cleaned, languageName)
}

func synthesizeKey(locID string, position int) (string, bool) {
	m := locIDPattern.FindStringSubmatch(locID)
	if m == nil {
		return "", false
	}

	base := m[1]
	seq1 := m[2]
	if seq1 == "" {
		seq1 = strconv.Itoa(position)
	}
	seq2 := m[3]
	if seq2 == "" {
		seq2 = "1"
	}

	keyType, ok := keyMappings[base]
	if !ok {
		keyType = strings.ToLower(base)
	}

	if singleSequenceKeys[base] {
		return keyType + "_" + seq1, true
	}
	return keyType + "_" + seq1 + "_" + seq2, true
}

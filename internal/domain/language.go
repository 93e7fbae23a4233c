package domain

import "strings"

// languageNames maps CSV/UI language codes to canonical lowercase language
// names used as keys throughout the pipeline.
var languageNames = map[string]string{
	"TR":    "turkish",
	"FR":    "french",
	"DE":    "german",
	"ES":    "spanish",
	"IT":    "italian",
	"PT":    "portuguese",
	"RU":    "russian",
	"JP":    "japanese",
	"KR":    "korean",
	"TH":    "thai",
	"VN":    "vietnamese",
	"ID":    "indonesian",
	"MY":    "malay",
	"RO":    "romanian",
	"AR":    "arabic",
	"PL":    "polish",
	"CZ":    "czech",
	"HU":    "hungarian",
	"CN_TR": "chinese",
}

// languageCodes is the inverse mapping used for output file naming
// (strings_<code>.json).
var languageCodes = map[string]string{
	"turkish":    "tr",
	"french":     "fr",
	"german":     "de",
	"spanish":    "es",
	"italian":    "it",
	"portuguese": "pt",
	"russian":    "ru",
	"japanese":   "jp",
	"korean":     "kr",
	"thai":       "th",
	"vietnamese": "vn",
	"indonesian": "id",
	"malay":      "my",
	"romanian":   "ro",
	"arabic":     "ar",
	"polish":     "pl",
	"czech":      "cz",
	"hungarian":  "hu",
	"chinese":    "cn_tr",
	"english":    "en",
}

// characterColumnNames remaps character-file column headers to canonical
// language names. Some sheets carry multi-word codes like "cz (cestina)".
var characterColumnNames = map[string]string{
	"cn_tr":        "chinese",
	"jp":           "japanese",
	"kr":           "korean",
	"ar":           "arabic",
	"cz (cestina)": "czech",
	"hu (magyar)":  "hungarian",
	"pl (polski)":  "polish",
	"th (thai)":    "thai",
	"vn (vietnam)": "vietnamese",
}

// LanguageName resolves a language code to its canonical name. Unknown codes
// fall back to a lowercase copy so they still round-trip through the output
// tables.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToUpper(code)]; ok {
		return name
	}
	return strings.ToLower(code)
}

// LanguageCode returns the short output code for a canonical language name,
// falling back to the name itself.
func LanguageCode(name string) string {
	if code, ok := languageCodes[strings.ToLower(name)]; ok {
		return code
	}
	return strings.ToLower(name)
}

// CharacterColumnLanguage resolves a character-sheet column header to a
// canonical language name.
func CharacterColumnLanguage(column string) string {
	lower := strings.ToLower(strings.TrimSpace(column))
	if name, ok := characterColumnNames[lower]; ok {
		return name
	}
	if name, ok := languageNames[strings.ToUpper(lower)]; ok {
		return name
	}
	return lower
}

// KnownLanguageCode reports whether code maps to a catalogued language.
func KnownLanguageCode(code string) bool {
	_, ok := languageNames[strings.ToUpper(code)]
	return ok
}

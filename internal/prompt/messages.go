package prompt

import (
	"fmt"
	"strings"

	"github.com/unicostudio/b-ai-localization/internal/domain"
	"github.com/unicostudio/b-ai-localization/internal/util"
)

// LocalizeVars holds everything needed to build one localization request.
type LocalizeVars struct {
	EnglishText      string
	LanguageCodes    []string
	ImageDescription string
	CustomPrompt     string
	Game             string
}

// SystemMessage returns the caller override when present, else the per-game
// persona.
func SystemMessage(vars LocalizeVars) string {
	if strings.TrimSpace(vars.CustomPrompt) != "" {
		return vars.CustomPrompt
	}
	return GamePersona(vars.Game)
}

// UserMessage embeds the source text, the optional image description as
// additional context, and the explicit list of target language names.
func UserMessage(vars LocalizeVars) string {
	var context string
	if vars.ImageDescription != "" {
		context = fmt.Sprintf("\n\nImage Context: %s\n", vars.ImageDescription)
	}

	return fmt.Sprintf(`
English Text: %s%s

Please provide localized versions in %s that preserve the meaning, humor, and game mechanic while being culturally appropriate.
`, vars.EnglishText, context, LanguageNameList(vars.LanguageCodes))
}

// LanguageNameList renders the target languages as a comma-separated list of
// capitalized names ("Turkish, French, German").
func LanguageNameList(codes []string) string {
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, util.Capitalize(domain.LanguageName(code)))
	}
	return strings.Join(names, ", ")
}

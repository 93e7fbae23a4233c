package service

import (
	"context"

	"github.com/unicostudio/b-ai-localization/internal/constants"
	"github.com/unicostudio/b-ai-localization/internal/domain"
	"github.com/unicostudio/b-ai-localization/internal/prompt"
	"github.com/unicostudio/b-ai-localization/internal/util"
	"github.com/unicostudio/b-ai-localization/pkg/errors"
	"go.uber.org/zap"
)

// Localizer issues one completion request per source text and parses the
// free-form response into per-language strings. Unlike the vision path,
// transport failures surface as errors: silently losing text is not
// acceptable.
type Localizer struct {
	provider  CompletionProvider
	extractor *prompt.Extractor
	cache     LocalizationCache
	status    *StatusLog
	logger    *zap.Logger
}

func NewLocalizer(provider CompletionProvider, cache LocalizationCache, status *StatusLog, logger *zap.Logger) *Localizer {
	return &Localizer{
		provider:  provider,
		extractor: prompt.NewExtractor(),
		cache:     cache,
		status:    status,
		logger:    logger,
	}
}

// LocalizeParams identifies one localization call.
type LocalizeParams struct {
	EnglishText      string
	ModelID          string
	LanguageCodes    []string
	CustomPrompt     string
	Game             string
	ImageDescription string
}

// Localize returns a mapping from canonical language name to extracted text.
// Every requested language is present in the result: a section the model
// failed to produce maps to an extraction placeholder. Character names are
// untouched here; the normalizer runs downstream.
func (l *Localizer) Localize(ctx context.Context, params LocalizeParams) (map[string]string, error) {
	languageNames := make([]string, 0, len(params.LanguageCodes))
	for _, code := range params.LanguageCodes {
		languageNames = append(languageNames, domain.LanguageName(code))
	}

	cacheKey := CacheKey(params.ModelID, params.EnglishText, languageNames, params.ImageDescription)
	if cached, ok := l.cache.Get(ctx, cacheKey); ok {
		l.logger.Debug("Localization cache hit",
			zap.String("text", util.TruncateString(params.EnglishText, 40)),
		)
		return cached, nil
	}

	vars := prompt.LocalizeVars{
		EnglishText:      params.EnglishText,
		LanguageCodes:    params.LanguageCodes,
		ImageDescription: params.ImageDescription,
		CustomPrompt:     params.CustomPrompt,
		Game:             params.Game,
	}

	responseText, err := l.provider.Complete(ctx, CompletionRequest{
		Model:       params.ModelID,
		System:      prompt.SystemMessage(vars),
		User:        prompt.UserMessage(vars),
		MaxTokens:   constants.GenerationConfig.LocalizeMaxTokens,
		Temperature: constants.GenerationConfig.LocalizeTemperature,
	})
	if err != nil {
		apiErr := errors.NewAPIError("localization request failed", 502, map[string]any{
			"model": params.ModelID,
		})
		apiErr.Cause = err
		return nil, apiErr
	}

	l.status.Successf("Received localization response for: %s", util.TruncateString(params.EnglishText, 30))

	sections := l.extractor.Sections(responseText, languageNames)
	for lang, text := range sections {
		if text == prompt.ExtractionPlaceholder(lang) {
			l.status.Warnf("Could not extract %s localization", lang)
		}
	}

	l.cache.Set(ctx, cacheKey, sections)
	return sections, nil
}

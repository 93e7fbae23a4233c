package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/unicostudio/b-ai-localization/internal/constants"
	"github.com/unicostudio/b-ai-localization/internal/prompt"
	"github.com/unicostudio/b-ai-localization/internal/util"
	"go.uber.org/zap"
)

// VisionDescriber produces a short natural-language description of a game
// screenshot. Description failures never stop the pipeline: every failure
// path degrades to a fixed sentinel string.
type VisionDescriber struct {
	provider CompletionProvider
	logger   *zap.Logger
	status   *StatusLog

	// retryDelay is a field so tests can zero it.
	retryDelay time.Duration
}

func NewVisionDescriber(provider CompletionProvider, status *StatusLog, logger *zap.Logger) *VisionDescriber {
	return &VisionDescriber{
		provider:   provider,
		logger:     logger,
		status:     status,
		retryDelay: constants.RetryConfig.RetryDelay,
	}
}

// Describe asks the vision model for a description of the image, clamped to
// the configured sentence budget. On any failure it returns the error
// sentinel so the group proceeds with text-only context.
func (v *VisionDescriber) Describe(ctx context.Context, image []byte, filename string) string {
	if len(image) == 0 {
		return constants.DescriptionErrorSentinel
	}

	v.status.Infof("Getting image description for %s...", filename)

	req := CompletionRequest{
		Model:       constants.VisionModelID,
		System:      prompt.VisionSystemPrompt,
		User:        prompt.VisionUserPrompt,
		ImageData:   image,
		ImageMIME:   detectImageMIME(image, filename),
		MaxTokens:   constants.GenerationConfig.VisionMaxTokens,
		Temperature: constants.GenerationConfig.VisionTemperature,
	}

	var text string
	var err error
	for attempt := 0; attempt <= constants.RetryConfig.VisionMaxRetries; attempt++ {
		if attempt > 0 {
			v.logger.Warn("Retrying vision request",
				zap.String("filename", filename),
				zap.Int("attempt", attempt+1),
			)
			select {
			case <-ctx.Done():
				v.status.Errorf("Error getting image description: %v", ctx.Err())
				return constants.DescriptionErrorSentinel
			case <-time.After(v.retryDelay):
			}
		}

		text, err = v.provider.Complete(ctx, req)
		if err == nil {
			break
		}
	}
	if err != nil {
		v.status.Errorf("Error getting image description: %v", err)
		return constants.DescriptionErrorSentinel
	}

	description := clampSentences(text, constants.GenerationConfig.DescriptionSentences)
	v.status.Successf("Got image description: %s", util.TruncateString(description, 50))
	return description
}

func clampSentences(text string, max int) string {
	sentences := util.SplitSentences(strings.TrimSpace(text))
	if len(sentences) <= max {
		return strings.TrimSpace(text)
	}
	return strings.Join(sentences[:max], " ")
}

func encodeImage(image []byte) string {
	return base64.StdEncoding.EncodeToString(image)
}

func detectImageMIME(image []byte, filename string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".png"):
		return "image/png"
	case strings.HasSuffix(strings.ToLower(filename), ".gif"):
		return "image/gif"
	case strings.HasSuffix(strings.ToLower(filename), ".webp"):
		return "image/webp"
	case strings.HasSuffix(strings.ToLower(filename), ".jpg"),
		strings.HasSuffix(strings.ToLower(filename), ".jpeg"):
		return "image/jpeg"
	}
	if mime := http.DetectContentType(image); strings.HasPrefix(mime, "image/") {
		return mime
	}
	return "image/jpeg"
}

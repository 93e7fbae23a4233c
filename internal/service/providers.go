package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/unicostudio/b-ai-localization/internal/constants"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// CompletionRequest is one chat-style request: a system/user message pair,
// optionally with an inline base64 image, plus generation parameters.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	ImageData   []byte
	ImageMIME   string
	MaxTokens   int64
	Temperature float64
}

// CompletionProvider issues one request and returns the raw response text.
type CompletionProvider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenRouterProvider talks to the OpenRouter chat-completions endpoint
// through the OpenAI-compatible client.
type OpenRouterProvider struct {
	client *openai.Client
	logger *zap.Logger
}

func NewOpenRouterProvider(apiKey string, logger *zap.Logger) *OpenRouterProvider {
	client := openai.NewClient(
		option.WithBaseURL(constants.APIConfig.OpenRouterBaseURL),
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(constants.APIConfig.RequestTimeout),
		// Ranking headers OpenRouter uses to attribute traffic.
		option.WithHeader("HTTP-Referer", constants.APIConfig.Referer),
		option.WithHeader("X-Title", constants.APIConfig.Title),
	)
	return &OpenRouterProvider{
		client: &client,
		logger: logger,
	}
}

func (p *OpenRouterProvider) Name() string {
	return "OpenRouter"
}

func (p *OpenRouterProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var userMessage openai.ChatCompletionMessageParamUnion
	if len(req.ImageData) > 0 {
		dataURL := fmt.Sprintf("data:%s;base64,%s", req.ImageMIME, encodeImage(req.ImageData))
		userMessage = openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(req.User),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
		})
	} else {
		userMessage = openai.UserMessage(req.User)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, userMessage)

	p.logger.Debug("Sending chat completion request",
		zap.String("provider", p.Name()),
		zap.String("model", req.Model),
		zap.Bool("has_image", len(req.ImageData) > 0),
	)

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		MaxTokens:   openai.Int(req.MaxTokens),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in %s response", p.Name())
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty content in %s response", p.Name())
	}

	p.logger.Debug("Chat completion response received",
		zap.String("provider", p.Name()),
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}

// GeminiProvider is the optional direct-Gemini fallback, used when the
// OpenRouter call fails and a Gemini API key is configured.
type GeminiProvider struct {
	client       *genai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client:       client,
		defaultModel: "gemini-2.5-flash",
		logger:       logger,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "Gemini"
}

func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	parts := []*genai.Part{{Text: req.User}}
	if len(req.ImageData) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: req.ImageMIME, Data: req.ImageData},
		})
	}

	p.logger.Debug("Fallback: generating with Gemini", zap.String("model", p.defaultModel))

	resp, err := p.client.Models.GenerateContent(ctx, p.defaultModel, []*genai.Content{
		{Parts: parts},
	}, config)
	if err != nil {
		return "", err
	}

	text := extractGeminiText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}

// FallbackProvider tries the primary provider first and falls back to the
// secondary on any error. Secondary may be nil.
type FallbackProvider struct {
	primary   CompletionProvider
	secondary CompletionProvider
	logger    *zap.Logger
}

func NewFallbackProvider(primary, secondary CompletionProvider, logger *zap.Logger) *FallbackProvider {
	return &FallbackProvider{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (p *FallbackProvider) Name() string {
	return p.primary.Name()
}

func (p *FallbackProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	text, err := p.primary.Complete(ctx, req)
	if err == nil {
		return text, nil
	}
	if p.secondary == nil {
		return "", err
	}

	p.logger.Warn("Primary provider failed, trying fallback",
		zap.String("primary", p.primary.Name()),
		zap.String("fallback", p.secondary.Name()),
		zap.Error(err),
	)

	text, fallbackErr := p.secondary.Complete(ctx, req)
	if fallbackErr != nil {
		return "", fmt.Errorf("%s failed (%v); %s fallback failed: %w",
			p.primary.Name(), err, p.secondary.Name(), fallbackErr)
	}
	return text, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/unicostudio/b-ai-localization/internal/constants"
)

// retryingProvider fails a fixed number of times before answering.
type retryingProvider struct {
	failures int
	response string
	calls    int
}

func (p *retryingProvider) Name() string { return "retrying" }

func (p *retryingProvider) Complete(_ context.Context, _ CompletionRequest) (string, error) {
	p.calls++
	if p.calls <= p.failures {
		return "", fmt.Errorf("upstream timeout")
	}
	return p.response, nil
}

func newTestDescriber(provider CompletionProvider) *VisionDescriber {
	logger := zap.NewNop()
	v := NewVisionDescriber(provider, NewStatusLog(logger), logger)
	v.retryDelay = 0
	return v
}

func TestDescribeReturnsDescription(t *testing.T) {
	provider := &fakeProvider{name: "fake", response: "A cartoon sun over a green field."}
	v := newTestDescriber(provider)

	got := v.Describe(context.Background(), []byte("img"), "ID1.png")
	if got != "A cartoon sun over a green field." {
		t.Fatalf("unexpected description: %q", got)
	}

	req := provider.requests[0]
	if req.Model != constants.VisionModelID {
		t.Fatalf("expected vision model, got %q", req.Model)
	}
	if len(req.ImageData) == 0 || req.ImageMIME != "image/png" {
		t.Fatalf("expected inline png image, got mime %q", req.ImageMIME)
	}
}

func TestDescribeEmptyImageYieldsSentinel(t *testing.T) {
	provider := &fakeProvider{name: "fake", response: "unused"}
	v := newTestDescriber(provider)

	if got := v.Describe(context.Background(), nil, "ID1.png"); got != constants.DescriptionErrorSentinel {
		t.Fatalf("expected sentinel, got %q", got)
	}
	if len(provider.requests) != 0 {
		t.Fatal("expected no provider call for empty image")
	}
}

func TestDescribeFailureYieldsSentinel(t *testing.T) {
	provider := &fakeProvider{name: "fake", err: fmt.Errorf("boom")}
	v := newTestDescriber(provider)

	if got := v.Describe(context.Background(), []byte("img"), "ID1.jpg"); got != constants.DescriptionErrorSentinel {
		t.Fatalf("expected sentinel after exhausted retries, got %q", got)
	}
	if len(provider.requests) != constants.RetryConfig.VisionMaxRetries+1 {
		t.Fatalf("expected %d attempts, got %d", constants.RetryConfig.VisionMaxRetries+1, len(provider.requests))
	}
}

func TestDescribeRecoversOnRetry(t *testing.T) {
	provider := &retryingProvider{failures: 1, response: "A tidy kitchen."}
	v := newTestDescriber(provider)

	if got := v.Describe(context.Background(), []byte("img"), "ID1.png"); got != "A tidy kitchen." {
		t.Fatalf("expected description after retry, got %q", got)
	}
	if provider.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", provider.calls)
	}
}

func TestDescribeClampsSentenceCount(t *testing.T) {
	long := "One. Two. Three. Four. Five. Six. Seven."
	provider := &fakeProvider{name: "fake", response: long}
	v := newTestDescriber(provider)

	got := v.Describe(context.Background(), []byte("img"), "ID1.png")
	if strings.Contains(got, "Six") || strings.Contains(got, "Seven") {
		t.Fatalf("expected description clamped to %d sentences, got %q",
			constants.GenerationConfig.DescriptionSentences, got)
	}
	if !strings.Contains(got, "Five") {
		t.Fatalf("expected the first five sentences kept, got %q", got)
	}
}

func TestDetectImageMIME(t *testing.T) {
	cases := map[string]string{
		"shot.PNG":  "image/png",
		"shot.jpeg": "image/jpeg",
		"shot.webp": "image/webp",
		"shot.gif":  "image/gif",
	}
	for filename, want := range cases {
		if got := detectImageMIME([]byte("x"), filename); got != want {
			t.Fatalf("detectImageMIME(%q) = %q, want %q", filename, got, want)
		}
	}
	// Unknown extension and undetectable bytes fall back to jpeg.
	if got := detectImageMIME([]byte{0x00, 0x01}, "shot.bin"); got != "image/jpeg" {
		t.Fatalf("expected jpeg fallback, got %q", got)
	}
}

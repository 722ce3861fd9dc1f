package genquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultModel             = "anthropic/claude-3.5-haiku:beta"

	maxCompletionTokens = 1200
	temperature         = 0.1
)

// Provider is the boundary to the LLM. Implementations send a single
// chat-completion request and return the raw model output text.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// openRouterProvider targets the OpenRouter API, which is OpenAI-compatible,
// so the OpenAI SDK is reused with a custom base URL.
type openRouterProvider struct {
	client *openai.Client
	model  string
	resets *resetCapture
}

// NewOpenRouterProvider creates a provider for the OpenRouter API. Model and
// baseURL fall back to defaults when empty.
func NewOpenRouterProvider(apiKey, model, baseURL string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	resets := &resetCapture{base: http.DefaultTransport}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Transport: resets}

	return &openRouterProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		resets: resets,
	}, nil
}

func (p *openRouterProvider) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", p.mapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Err: errors.New("no choices in response")}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &UpstreamError{Err: errors.New("model returned empty content")}
	}
	return content, nil
}

func (p *openRouterProvider) mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &RateLimitError{ResetAt: p.resets.take(), Err: err}
		}
		return &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	return &UpstreamError{Err: err}
}

// resetCapture records the X-RateLimit-Reset header of 429 responses so the
// provider can report when the limit clears. The SDK's error type does not
// expose response headers.
type resetCapture struct {
	base http.RoundTripper

	mu    sync.Mutex
	reset string
}

func (c *resetCapture) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := c.base.RoundTrip(req)
	if err == nil && resp.StatusCode == http.StatusTooManyRequests {
		if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
			c.mu.Lock()
			c.reset = v
			c.mu.Unlock()
		}
	}
	return resp, err
}

// take consumes the last captured reset timestamp (epoch milliseconds).
func (c *resetCapture) take() *time.Time {
	c.mu.Lock()
	v := c.reset
	c.reset = ""
	c.mu.Unlock()

	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms)
	return &t
}

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	apperrors "call-summary/internal/app/errors"
	openai2 "call-summary/internal/app/api/openai"
)

const strategyName = "openai"

// Completer sends single-turn chat completions to OpenAI
type Completer struct {
	baseURL string
	model   string
	timeout time.Duration
}

// NewCompleter creates a Completer. An empty model falls back to gpt-3.5-turbo.
func NewCompleter(baseURL, model string, timeout time.Duration) *Completer {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Completer{baseURL: baseURL, model: model, timeout: timeout}
}

// Complete returns the first choice's content for a system+user exchange
func (c *Completer) Complete(ctx context.Context, apiKey, system, user string, maxTokens int) (string, error) {
	if apiKey == "" {
		return "", apperrors.ErrMissingAPIKey
	}
	client := openai2.NewClient(apiKey, c.baseURL, c.timeout)

	request := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
	}
	resp, err := client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", openai2.ClassifyError(strategyName, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", apperrors.ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Model returns the configured chat model
func (c *Completer) Model() string { return c.model }

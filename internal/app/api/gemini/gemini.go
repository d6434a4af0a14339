package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genai"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/strategy"
)

const strategyName = "gemini"

// Completer generates text with a Gemini model
type Completer struct {
	model   string
	baseURL string
	timeout time.Duration
}

// NewCompleter creates a Completer. baseURL is only set in tests.
func NewCompleter(model, baseURL string, timeout time.Duration) *Completer {
	return &Completer{model: model, baseURL: baseURL, timeout: timeout}
}

// Complete sends one prompt with a system instruction and returns the
// concatenated text of the first candidate.
func (c *Completer) Complete(ctx context.Context, apiKey, system, user string, maxTokens int) (string, error) {
	if apiKey == "" {
		return "", apperrors.ErrMissingAPIKey
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", strategy.NewError(strategyName, strategy.CodeUnavailable, "create client", false, err)
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		MaxOutputTokens:   int32(maxTokens),
	}
	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(user), genConfig)
	if err != nil {
		return "", classify(err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
	}

	return "", apperrors.ErrEmptyCompletion
}

// classify maps genai failures onto strategy errors. Quota errors are retryable.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		se := strategy.FromHTTPStatus(strategyName, apiErr.Code, apiErr.Message)
		se.Cause = err
		return se
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
		return strategy.NewError(strategyName, strategy.CodeRateLimit, "rate limited", true, err)
	}
	return strategy.NewError(strategyName, strategy.CodeUnavailable, "generate content", true, err)
}

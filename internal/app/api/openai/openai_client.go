package openai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"call-summary/internal/app/strategy"
)

// NewClient creates a client for apiKey. Clients are built per call because
// the key can differ between requests.
func NewClient(apiKey, baseURL string, timeout time.Duration) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return openai.NewClientWithConfig(cfg)
}

// ClassifyError converts go-openai errors into strategy errors
func ClassifyError(name string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		se := strategy.FromHTTPStatus(name, apiErr.HTTPStatusCode, apiErr.Message)
		se.Cause = err
		return se
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		se := strategy.FromHTTPStatus(name, reqErr.HTTPStatusCode, string(reqErr.Body))
		se.Cause = err
		return se
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return strategy.NewError(name, strategy.CodeTimeout, "request timed out", true, err)
	}
	if errors.Is(err, context.Canceled) {
		return strategy.NewError(name, strategy.CodeTimeout, "request cancelled", false, err)
	}

	return strategy.NewError(name, strategy.CodeUnavailable, "request failed", true, err)
}

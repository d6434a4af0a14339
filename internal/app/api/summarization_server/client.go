package summarization_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/strategy"
)

const strategyName = "local_model"

// Client talks to a locally hosted abstractive summarization model that
// speaks the Hugging Face inference JSON format.
type Client struct {
	endpoint  string
	minLength int
	maxLength int
	client    *http.Client
}

// Request is the inference payload
type Request struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// Parameters bounds the generated summary length in tokens
type Parameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

// Summary is one element of the inference response
type Summary struct {
	SummaryText string `json:"summary_text"`
}

// NewClient creates a Client. An empty endpoint means no model is deployed.
func NewClient(endpoint string, minLength, maxLength int, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 300 * time.Second
	}
	return &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		minLength: minLength,
		maxLength: maxLength,
		client:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an endpoint was provided
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Summarize returns the model's summary of text
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if !c.Configured() {
		return "", apperrors.Wrap(apperrors.ErrModelUnavailable, "local summarizer URL not configured")
	}

	payload, err := json.Marshal(Request{
		Inputs: text,
		Parameters: Parameters{
			MinLength: c.minLength,
			MaxLength: c.maxLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", strategy.NewError(strategyName, strategy.CodeUnavailable, "local model request failed", true, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", strategy.NewError(strategyName, strategy.CodeUnavailable, "failed to read response", true, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", strategy.FromHTTPStatus(strategyName, resp.StatusCode, string(body))
	}

	var summaries []Summary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return "", strategy.NewError(strategyName, strategy.CodeBadResponse, "failed to parse response", false, err)
	}
	if len(summaries) == 0 || strings.TrimSpace(summaries[0].SummaryText) == "" {
		return "", apperrors.ErrEmptyCompletion
	}
	return strings.TrimSpace(summaries[0].SummaryText), nil
}

// HealthCheck verifies the model server answers
func (c *Client) HealthCheck(ctx context.Context) error {
	if !c.Configured() {
		return apperrors.ErrModelUnavailable
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	// Accept any 2xx, 404 or 405 (endpoint might not support GET)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusMethodNotAllowed {
		return nil
	}
	return fmt.Errorf("health check returned status %d", resp.StatusCode)
}

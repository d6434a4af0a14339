package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apierrors "call-summary/internal/api/errors"
	"call-summary/internal/api/v1/dto"
	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/api/v1/handlers"
)

const (
	// DefaultBaseURL matches the server's default listen address
	DefaultBaseURL = "http://localhost:8000"

	generatePath = "/api/generate-summary"
	healthPath   = "/health"
)

// Client talks to a running call summarizer server
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithAPIKey sends key as the per-request OpenAI key
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = strings.TrimSpace(key) }
}

// WithTimeout bounds each request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the server at baseURL
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks that the server is up
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d", resp.StatusCode)
	}
	return nil
}

// SummarizeFile uploads the recording at path
func (c *Client) SummarizeFile(ctx context.Context, path string) (*dto.GenerateSummaryResponse, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFileNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.Summarize(ctx, filepath.Base(path), f)
}

// Summarize streams audio to the server as a multipart upload named filename.
// Wrap audio in a progress reader to observe the upload.
func (c *Client) Summarize(ctx context.Context, filename string, audio io.Reader) (*dto.GenerateSummaryResponse, error) {
	body, contentType := multipartBody(filename, audio)
	defer body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set(handlers.APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w: %w", filename, apperrors.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var out dto.GenerateSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// multipartBody streams the form through a pipe so large recordings are
// never buffered in memory.
func multipartBody(filename string, audio io.Reader) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("audio_file", filename)
		if err == nil {
			_, err = io.Copy(part, audio)
		}
		if err == nil {
			err = writer.Close()
		}
		pw.CloseWithError(err)
	}()

	return pr, writer.FormDataContentType()
}

// ResponseError is a non-200 reply from the server
type ResponseError struct {
	StatusCode int
	API        *apierrors.APIError
}

func (e *ResponseError) Error() string {
	if e.API != nil && e.API.Message != "" {
		return fmt.Sprintf("server returned %d (%s): %s", e.StatusCode, e.API.Kind, e.API.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

func (e *ResponseError) Unwrap() error {
	if e.API == nil {
		return nil
	}
	return e.API
}

func decodeError(resp *http.Response) error {
	respErr := &ResponseError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Join(respErr, err)
	}

	var apiErr apierrors.APIError
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
		respErr.API = &apiErr
	}
	return respErr
}

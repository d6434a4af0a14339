package whisper_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
)

const strategyName = "whisper_server"

// Client sends audio to a whisper.cpp server's /inference endpoint
type Client struct {
	baseURL       string
	inferencePath string
	language      string
	client        *http.Client
}

// Response represents the verbose_json response from whisper-server
type Response struct {
	Text     string    `json:"text,omitempty"`
	Task     string    `json:"task,omitempty"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// Segment represents a segment in verbose response
type Segment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewClient creates a whisper-server client. An empty baseURL yields a
// client that reports itself unconfigured.
func NewClient(baseURL, language string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		inferencePath: "/inference",
		language:      language,
		client:        &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a server URL was provided
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Transcribe posts the audio and parses the verbose JSON response
func (c *Client) Transcribe(ctx context.Context, audio model.AudioInput) (*model.TranscriptionResponse, error) {
	if !c.Configured() {
		return nil, apperrors.Wrap(apperrors.ErrModelUnavailable, "whisper server URL not configured")
	}
	if len(audio.Data) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}
	startTime := time.Now()

	body, contentType, err := c.createMultipartForm(audio)
	if err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeBadRequest, "failed to create multipart form", false, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.inferencePath, body)
	if err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeBadRequest, "failed to create HTTP request", false, err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeUnavailable, "HTTP request failed", true, err)
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeUnavailable, "failed to read response", true, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, strategy.FromHTTPStatus(strategyName, resp.StatusCode, string(responseData))
	}

	var parsed Response
	if err := json.Unmarshal(responseData, &parsed); err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeBadResponse, "failed to parse response", false, err)
	}

	response := &model.TranscriptionResponse{
		Text:           strings.TrimSpace(parsed.Text),
		Language:       parsed.Language,
		Duration:       time.Duration(parsed.Duration * float64(time.Second)),
		ProcessingTime: time.Since(startTime),
		ModelUsed:      "whisper-server",
	}
	for _, seg := range parsed.Segments {
		response.Segments = append(response.Segments, model.TranscriptionSegment{
			ID:    seg.ID,
			Text:  seg.Text,
			Start: seg.Start,
			End:   seg.End,
		})
	}

	if response.Text == "" && !response.HasSegments() {
		return nil, strategy.NewError(strategyName, strategy.CodeBadResponse, "no transcription text found in response", false, apperrors.ErrEmptyTranscription)
	}

	return response, nil
}

func (c *Client) createMultipartForm(audio model.AudioInput) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	filename := audio.Filename
	if filename == "" {
		filename = "audio" + audio.Extension()
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio.Data); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	params := map[string]string{
		"response_format": "verbose_json",
		"temperature":     "0.00",
	}
	if c.language != "" {
		params["language"] = c.language
	}
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

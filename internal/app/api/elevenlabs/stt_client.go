package elevenlabs

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

const strategyName = "elevenlabs"

// STTClient calls the ElevenLabs Speech-to-Text API with diarization enabled
type STTClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// Response is the speech-to-text payload
type Response struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
	Words        []Word `json:"words"`
}

// Word is one token of the response. Type is "word", "spacing" or "audio_event".
type Word struct {
	Text      string  `json:"text"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Type      string  `json:"type"`
	SpeakerID string  `json:"speaker_id"`
}

// NewSTTClient creates a new ElevenLabs client
func NewSTTClient(baseURL, modelID string, timeout time.Duration) *STTClient {
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io/v1"
	}
	if modelID == "" {
		modelID = "scribe_v1"
	}
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &STTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   modelID,
		client:  &http.Client{Timeout: timeout},
	}
}

// Transcribe uploads the audio and groups consecutive words by speaker into segments
func (el *STTClient) Transcribe(ctx context.Context, apiKey string, audio model.AudioInput) (*model.TranscriptionResponse, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}
	if len(audio.Data) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}
	startTime := time.Now()

	httpReq, err := el.createHTTPRequest(ctx, apiKey, audio)
	if err != nil {
		return nil, err
	}

	resp, err := el.client.Do(httpReq)
	if err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeUnavailable, "failed to call ElevenLabs API", true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, strategy.FromHTTPStatus(strategyName, resp.StatusCode, string(body))
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, strategy.NewError(strategyName, strategy.CodeBadResponse, "failed to parse API response", false, err)
	}

	return &model.TranscriptionResponse{
		Text:           payload.Text,
		Language:       payload.LanguageCode,
		Segments:       GroupBySpeaker(payload.Words),
		ProcessingTime: time.Since(startTime),
		ModelUsed:      el.model,
	}, nil
}

func (el *STTClient) createHTTPRequest(ctx context.Context, apiKey string, audio model.AudioInput) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	filename := audio.Filename
	if filename == "" {
		filename = "audio" + audio.Extension()
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	if _, err := part.Write(audio.Data); err != nil {
		return nil, fmt.Errorf("failed to copy file data: %w", err)
	}

	fields := map[string]string{
		"model_id": el.model,
		"diarize":  "true",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to add %s field: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, el.baseURL+"/speech-to-text", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("xi-api-key", apiKey)
	req.Header.Set("User-Agent", "call-summary/1.0")
	return req, nil
}

// GroupBySpeaker folds the word stream into one segment per run of the same
// speaker_id. Audio events are dropped.
func GroupBySpeaker(words []Word) []model.TranscriptionSegment {
	var segments []model.TranscriptionSegment
	var current *model.TranscriptionSegment

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimSpace(current.Text)
		if current.Text != "" {
			current.ID = len(segments)
			segments = append(segments, *current)
		}
		current = nil
	}

	for _, w := range words {
		if w.Type == "audio_event" {
			continue
		}
		if current == nil || (w.Type == "word" && w.SpeakerID != current.Speaker) {
			flush()
			current = &model.TranscriptionSegment{Speaker: w.SpeakerID, Start: w.Start}
		}
		current.Text += w.Text
		current.End = w.End
	}
	flush()

	return segments
}

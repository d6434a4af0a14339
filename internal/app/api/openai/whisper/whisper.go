package whisper

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	openai2 "call-summary/internal/app/api/openai"
	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
)

const strategyName = "openai"

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	baseURL string
	model   string
	timeout time.Duration
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(baseURL, modelName string, timeout time.Duration) *RemoteTranscriber {
	if modelName == "" {
		modelName = openai.Whisper1
	}
	return &RemoteTranscriber{baseURL: baseURL, model: modelName, timeout: timeout}
}

// Transcribe uploads the audio and requests verbose JSON so segment
// boundaries survive. OpenAI does not diarize, so segments carry no speaker.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, apiKey string, audio model.AudioInput) (*model.TranscriptionResponse, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}
	if len(audio.Data) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}

	startTime := time.Now()
	client := openai2.NewClient(apiKey, rt.baseURL, rt.timeout)

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: uploadName(audio),
		Reader:   bytes.NewReader(audio.Data),
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, openai2.ClassifyError(strategyName, err)
	}

	response := &model.TranscriptionResponse{
		Text:           resp.Text,
		Language:       resp.Language,
		Duration:       time.Duration(resp.Duration * float64(time.Second)),
		ProcessingTime: time.Since(startTime),
		ModelUsed:      rt.model,
	}
	for _, seg := range resp.Segments {
		response.Segments = append(response.Segments, model.TranscriptionSegment{
			ID:    seg.ID,
			Text:  seg.Text,
			Start: seg.Start,
			End:   seg.End,
		})
	}

	return response, nil
}

// uploadName gives the multipart part a filename with a usable extension,
// which the API relies on to detect the container format.
func uploadName(audio model.AudioInput) string {
	name := audio.Filename
	if name == "" {
		name = "audio"
	}
	if ext := audio.Extension(); ext != "" && !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

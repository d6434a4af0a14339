package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"call-summary/internal/app/model"
)

// MockRemoteTranscriber is a testify mock of a hosted speech-to-text client
type MockRemoteTranscriber struct {
	mock.Mock
}

// NewMockRemoteTranscriber creates an empty mock
func NewMockRemoteTranscriber() *MockRemoteTranscriber {
	return &MockRemoteTranscriber{}
}

// Transcribe records the call and returns the configured response
func (m *MockRemoteTranscriber) Transcribe(ctx context.Context, apiKey string, audio model.AudioInput) (*model.TranscriptionResponse, error) {
	args := m.Called(ctx, apiKey, audio)
	if resp := args.Get(0); resp != nil {
		return resp.(*model.TranscriptionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLocalTranscriber is a testify mock of an on-device speech-to-text model
type MockLocalTranscriber struct {
	mock.Mock
}

// NewMockLocalTranscriber creates an empty mock
func NewMockLocalTranscriber() *MockLocalTranscriber {
	return &MockLocalTranscriber{}
}

// Transcribe records the call and returns the configured response
func (m *MockLocalTranscriber) Transcribe(ctx context.Context, audio model.AudioInput) (*model.TranscriptionResponse, error) {
	args := m.Called(ctx, audio)
	if resp := args.Get(0); resp != nil {
		return resp.(*model.TranscriptionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// Segments builds a response whose segments carry the given texts and speakers.
// speakers may be nil for untagged output.
func Segments(texts []string, speakers []string) *model.TranscriptionResponse {
	resp := &model.TranscriptionResponse{}
	for i, text := range texts {
		seg := model.TranscriptionSegment{ID: i, Text: text}
		if i < len(speakers) {
			seg.Speaker = speakers[i]
		}
		resp.Segments = append(resp.Segments, seg)
		resp.Text += text
	}
	return resp
}

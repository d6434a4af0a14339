package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"call-summary/internal/app/model"
	"call-summary/internal/config"
)

// MockCompleter is a testify mock of a chat-completion collaborator
type MockCompleter struct {
	mock.Mock
}

// NewMockCompleter creates an empty mock
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete records the call and returns the configured completion
func (m *MockCompleter) Complete(ctx context.Context, apiKey, system, user string, maxTokens int) (string, error) {
	args := m.Called(ctx, apiKey, system, user, maxTokens)
	return args.String(0), args.Error(1)
}

// MockSummaryModel is a testify mock of a local summarization model
type MockSummaryModel struct {
	mock.Mock
}

// NewMockSummaryModel creates an empty mock
func NewMockSummaryModel() *MockSummaryModel {
	return &MockSummaryModel{}
}

// Summarize records the call and returns the configured summary
func (m *MockSummaryModel) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// MockPipeline is a testify mock of the end-to-end processor used by handlers
type MockPipeline struct {
	mock.Mock
}

// NewMockPipeline creates an empty mock
func NewMockPipeline() *MockPipeline {
	return &MockPipeline{}
}

// Process records the call and returns the configured result
func (m *MockPipeline) Process(ctx context.Context, audio model.AudioInput, creds config.Credentials) (*model.Result, error) {
	args := m.Called(ctx, audio, creds)
	if res := args.Get(0); res != nil {
		return res.(*model.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

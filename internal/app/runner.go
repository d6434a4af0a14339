package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"call-summary/internal/api/v1/dto"
	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/pipeline"
	"call-summary/internal/config"
)

// LocalRunner processes recordings in-process, without a server
type LocalRunner struct {
	pipeline *pipeline.Pipeline
	creds    config.Credentials
}

// NewLocalRunner builds the pipeline from cfg. apiKey overrides the OpenAI
// key the same way the X-API-Key header does on the server.
func NewLocalRunner(cfg *config.Config, logger *zap.Logger, apiKey string) (*LocalRunner, error) {
	p, err := InitializePipeline(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &LocalRunner{
		pipeline: p,
		creds:    cfg.Credentials.WithOpenAIOverride(apiKey),
	}, nil
}

// SummarizeFile reads the recording at path and runs it through the pipeline
func (r *LocalRunner) SummarizeFile(ctx context.Context, path string) (*dto.GenerateSummaryResponse, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFileNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	res, err := r.pipeline.Process(ctx, model.NewAudioInput(filepath.Base(path), data), r.creds)
	if err != nil {
		return nil, err
	}
	resp := dto.ToGenerateSummaryResponse(res)
	return &resp, nil
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"call-summary/internal/api/server"
	"call-summary/internal/api/v1/handlers"
	"call-summary/internal/app/pipeline"
	"call-summary/internal/app/summarizer"
	"call-summary/internal/app/titles"
	"call-summary/internal/app/transcriber"
	"call-summary/internal/config"
)

var pipelineSet = wire.NewSet(
	provideMetricsRegistry,
	provideStrategyMetrics,
	provideStrategyOptions,
	provideTranscriber,
	provideSummarizer,
	provideRuleBasedTitles,
	provideTitleSuggester,
	pipeline.NewPipeline,
	wire.Bind(new(pipeline.Transcriber), new(*transcriber.Transcriber)),
	wire.Bind(new(pipeline.Summarizer), new(*summarizer.Summarizer)),
	wire.Bind(new(pipeline.TitleSuggester), new(*titles.Suggester)),
)

// InitializePipeline builds the three-stage pipeline from cfg
func InitializePipeline(cfg *config.Config, logger *zap.Logger) (*pipeline.Pipeline, error) {
	wire.Build(pipelineSet)
	return &pipeline.Pipeline{}, nil
}

// InitializeServer builds the HTTP server and everything behind it
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		pipelineSet,
		server.NewServer,
		wire.Bind(new(handlers.Processor), new(*pipeline.Pipeline)),
	)
	return &server.Server{}, nil
}

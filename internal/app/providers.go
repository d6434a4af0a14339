package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/app/summarizer"
	"call-summary/internal/app/titles"
	"call-summary/internal/app/transcriber"
	"call-summary/internal/config"
)

// provideMetricsRegistry creates the per-process registry scraped by /metrics
func provideMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideStrategyMetrics(reg *prometheus.Registry) *strategy.Metrics {
	return strategy.NewMetrics(reg)
}

func provideStrategyOptions(cfg *config.Config, metrics *strategy.Metrics, logger *zap.Logger) strategy.Options {
	return strategy.Options{
		MaxRetries: cfg.Pipeline.MaxRetries,
		RetryDelay: cfg.Pipeline.RetryDelay,
		Metrics:    metrics,
		Logger:     logger,
	}
}

// provideTranscriber builds the transcription chain in configured order
func provideTranscriber(cfg *config.Config, logger *zap.Logger, opts strategy.Options) (*transcriber.Transcriber, error) {
	strategies, err := transcriber.NewRegistry(cfg, logger).Build(cfg.Pipeline.TranscriberOrder)
	if err != nil {
		return nil, fmt.Errorf("%s chain: %w", model.StageTranscribe, err)
	}
	return transcriber.New(strategies, opts), nil
}

// provideSummarizer builds the summarization chain in configured order
func provideSummarizer(cfg *config.Config, logger *zap.Logger, opts strategy.Options) (*summarizer.Summarizer, error) {
	strategies, err := summarizer.NewRegistry(cfg, logger).Build(cfg.Pipeline.SummarizerOrder)
	if err != nil {
		return nil, fmt.Errorf("%s chain: %w", model.StageSummarize, err)
	}
	return summarizer.New(strategies, opts), nil
}

func provideRuleBasedTitles() *titles.RuleBased {
	return titles.NewRuleBased(nil)
}

// provideTitleSuggester builds the title chain in configured order
func provideTitleSuggester(cfg *config.Config, rules *titles.RuleBased, opts strategy.Options) (*titles.Suggester, error) {
	strategies, err := titles.NewRegistry(cfg, rules).Build(cfg.Pipeline.TitleOrder)
	if err != nil {
		return nil, fmt.Errorf("%s chain: %w", model.StageTitle, err)
	}
	return titles.New(strategies, rules, opts), nil
}

package summarizer

import (
	"context"

	"go.uber.org/zap"

	"call-summary/internal/app/api/gemini"
	"call-summary/internal/app/api/openai/chat"
	"call-summary/internal/app/api/summarization_server"
	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/config"
)

// Summarizer turns a transcript into a two-section Markdown summary
type Summarizer struct {
	chain *strategy.Chain[string, string]
}

// New creates a Summarizer. The chain ends with an extractive fallback so
// a summary is produced even when every configured strategy fails.
func New(strategies []strategy.Strategy[string, string], opts strategy.Options) *Summarizer {
	return &Summarizer{
		chain: strategy.NewChain(model.StageSummarize, strategies, func(error) string { return "" }, opts),
	}
}

// Summarize normalizes the transcript and runs the strategy chain
func (s *Summarizer) Summarize(ctx context.Context, transcript string, creds config.Credentials) (string, model.Outcome) {
	text := Normalize(transcript)
	out, outcome, _ := s.chain.Execute(ctx, text, creds)
	if outcome.Strategy == strategy.FallbackName {
		out = ExtractiveSummary(text)
	}
	return out, outcome
}

// Strategies lists the configured order
func (s *Summarizer) Strategies() []string {
	return s.chain.Names()
}

// NewRegistry registers every summarization strategy known to the service
func NewRegistry(cfg *config.Config, logger *zap.Logger) *strategy.Registry[string, string] {
	reg := strategy.NewRegistry[string, string]()
	chunkSize := cfg.Pipeline.RemoteChunkSize

	_ = reg.Register(config.StrategyOpenAI, func() (strategy.Strategy[string, string], error) {
		completer := chat.NewCompleter(cfg.OpenAI.BaseURL, cfg.OpenAI.ChatModel, cfg.OpenAI.Timeout)
		return NewRemote(config.StrategyOpenAI, completer, func(c config.Credentials) string { return c.OpenAI }, chunkSize), nil
	})
	_ = reg.Register(config.StrategyGemini, func() (strategy.Strategy[string, string], error) {
		completer := gemini.NewCompleter(cfg.Gemini.Model, "", cfg.Gemini.Timeout)
		return NewRemote(config.StrategyGemini, completer, func(c config.Credentials) string { return c.Gemini }, chunkSize), nil
	})
	_ = reg.Register(config.StrategyLocalModel, func() (strategy.Strategy[string, string], error) {
		client := summarization_server.NewClient(cfg.LocalSummarizer.URL, cfg.LocalSummarizer.MinLength, cfg.LocalSummarizer.MaxLength, cfg.LocalSummarizer.Timeout)
		available := func() error {
			if !client.Configured() {
				return apperrors.Wrap(apperrors.ErrModelUnavailable, "LOCAL_SUMMARIZER_URL not set")
			}
			return nil
		}
		return NewLocalModel(client, available, cfg.Pipeline.LocalChunkSize, logger), nil
	})
	_ = reg.Register(config.StrategyExtractive, func() (strategy.Strategy[string, string], error) {
		return NewExtractive(), nil
	})

	return reg
}

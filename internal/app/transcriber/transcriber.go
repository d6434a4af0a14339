package transcriber

import (
	"context"

	"go.uber.org/zap"

	"call-summary/internal/app/api/elevenlabs"
	"call-summary/internal/app/api/openai/whisper"
	"call-summary/internal/app/api/whisper_cpp"
	"call-summary/internal/app/api/whisper_server"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/config"
)

// Transcriber turns audio into a speaker-labelled transcript. It never
// fails: when every strategy does, the transcript describes the failure.
type Transcriber struct {
	chain *strategy.Chain[model.AudioInput, model.Transcript]
}

// New creates a Transcriber over an ordered strategy list
func New(strategies []strategy.Strategy[model.AudioInput, model.Transcript], opts strategy.Options) *Transcriber {
	return &Transcriber{
		chain: strategy.NewChain(model.StageTranscribe, strategies, FailureTranscript, opts),
	}
}

// Transcribe runs the strategy chain
func (t *Transcriber) Transcribe(ctx context.Context, audio model.AudioInput, creds config.Credentials) (model.Transcript, model.Outcome) {
	transcript, outcome, _ := t.chain.Execute(ctx, audio, creds)
	return transcript, outcome
}

// Strategies lists the configured order
func (t *Transcriber) Strategies() []string {
	return t.chain.Names()
}

// NewRegistry registers every transcription strategy known to the service
func NewRegistry(cfg *config.Config, logger *zap.Logger) *strategy.Registry[model.AudioInput, model.Transcript] {
	reg := strategy.NewRegistry[model.AudioInput, model.Transcript]()
	threshold := cfg.Pipeline.TurnThreshold

	_ = reg.Register(config.StrategyOpenAI, func() (strategy.Strategy[model.AudioInput, model.Transcript], error) {
		client := whisper.NewRemoteTranscriber(cfg.OpenAI.BaseURL, cfg.OpenAI.TranscriptionModel, cfg.OpenAI.Timeout)
		return NewRemote(config.StrategyOpenAI, client, func(c config.Credentials) string { return c.OpenAI }), nil
	})
	_ = reg.Register(config.StrategyElevenLabs, func() (strategy.Strategy[model.AudioInput, model.Transcript], error) {
		client := elevenlabs.NewSTTClient(cfg.ElevenLabs.BaseURL, cfg.ElevenLabs.Model, cfg.ElevenLabs.Timeout)
		return NewRemote(config.StrategyElevenLabs, client, func(c config.Credentials) string { return c.ElevenLabs }), nil
	})
	_ = reg.Register(config.StrategyWhisperServer, func() (strategy.Strategy[model.AudioInput, model.Transcript], error) {
		client := whisper_server.NewClient(cfg.WhisperServer.URL, cfg.WhisperServer.Language, cfg.WhisperServer.Timeout)
		available := func() error {
			if !client.Configured() {
				return errWhisperServerUnset
			}
			return nil
		}
		return NewLocal(config.StrategyWhisperServer, client, available, threshold), nil
	})
	_ = reg.Register(config.StrategyWhisperCpp, func() (strategy.Strategy[model.AudioInput, model.Transcript], error) {
		client := whisper_cpp.NewLocalTranscriber(cfg.WhisperCpp.BinaryPath, cfg.WhisperCpp.ModelPath, cfg.WhisperCpp.Language, cfg.WhisperCpp.Timeout, logger)
		return NewLocal(config.StrategyWhisperCpp, client, client.Available, threshold), nil
	})

	return reg
}

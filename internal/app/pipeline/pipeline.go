package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/config"
)

// Transcriber is the first stage
type Transcriber interface {
	Transcribe(ctx context.Context, audio model.AudioInput, creds config.Credentials) (model.Transcript, model.Outcome)
}

// Summarizer is the second stage
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, creds config.Credentials) (string, model.Outcome)
}

// TitleSuggester is the third stage
type TitleSuggester interface {
	SuggestTitles(ctx context.Context, summary string, creds config.Credentials) ([]string, model.Outcome)
}

// Pipeline runs transcribe, summarize and title in sequence for one recording
type Pipeline struct {
	transcriber Transcriber
	summarizer  Summarizer
	titles      TitleSuggester
	logger      *zap.Logger
}

func NewPipeline(transcriber Transcriber, summarizer Summarizer, titles TitleSuggester, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		transcriber: transcriber,
		summarizer:  summarizer,
		titles:      titles,
		logger:      logger,
	}
}

// Process runs every stage. Stage failures degrade to fallbacks, so the
// only errors are an empty upload, a cancelled context or a panic.
func (p *Pipeline) Process(ctx context.Context, audio model.AudioInput, creds config.Credentials) (result *model.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline panicked",
				zap.String("file", audio.Filename),
				zap.Any("panic", r),
				zap.Stack("stack"))
			result = nil
			err = apperrors.Wrapf(apperrors.ErrPipelineFailed, "%v", r)
		}
	}()

	if len(audio.Data) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}

	start := time.Now()
	p.logger.Info("processing recording",
		zap.String("file", audio.Filename),
		zap.Int("bytes", len(audio.Data)),
		zap.Strings("credentials", creds.Available()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("before transcription: %w", err)
	}
	transcript, transcribed := p.transcriber.Transcribe(ctx, audio, creds)
	text := transcript.String()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("before summarization: %w", err)
	}
	summary, summarized := p.summarizer.Summarize(ctx, text, creds)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("before title suggestion: %w", err)
	}
	titles, titled := p.titles.SuggestTitles(ctx, summary, creds)

	result = &model.Result{
		Summary:    summary,
		Titles:     titles,
		Transcript: text,
		Outcomes:   []model.Outcome{transcribed, summarized, titled},
	}

	p.logger.Info("recording processed",
		zap.String("file", audio.Filename),
		zap.Duration("duration", time.Since(start)),
		zap.Bool("degraded", result.Degraded()),
		zap.Strings("strategies", result.Strategies()))
	return result, nil
}

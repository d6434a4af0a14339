package summarizer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/config"
)

// SystemPrompt instructs remote models for every summarization call
const SystemPrompt = "You are a professional meeting summarizer. " +
	"Summarize the provided meeting transcript into a concise, structured summary " +
	"that captures the key points of the discussion. " +
	"Include a 'Key Points' section that extracts the most important takeaways."

const (
	chunkPrompt   = "Summarize this part of the transcript: "
	combinePrompt = "Create a final summary combining these partial summaries: "
	directPrompt  = "Summarize this meeting transcript: "

	chunkMaxTokens = 500
	finalMaxTokens = 800
)

// Completer is a chat-completion collaborator
type Completer interface {
	Complete(ctx context.Context, apiKey, system, user string, maxTokens int) (string, error)
}

// SummaryModel is a local abstractive summarization model
type SummaryModel interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// KeyFunc picks the credential a remote strategy needs
type KeyFunc func(creds config.Credentials) string

// Remote summarizes with a hosted language model, map-reducing over
// fixed-size chunks when the transcript is long.
type Remote struct {
	name      string
	completer Completer
	key       KeyFunc
	chunkSize int
}

// NewRemote creates a remote strategy
func NewRemote(name string, completer Completer, key KeyFunc, chunkSize int) *Remote {
	if chunkSize <= 0 {
		chunkSize = config.DefaultRemoteChunkSize
	}
	return &Remote{name: name, completer: completer, key: key, chunkSize: chunkSize}
}

func (r *Remote) Info() strategy.Info {
	return strategy.Info{Name: r.name, Kind: model.KindRemote}
}

func (r *Remote) Available(creds config.Credentials) error {
	if r.key(creds) == "" {
		return apperrors.ErrMissingAPIKey
	}
	return nil
}

// Run fails as a whole if any chunk call fails
func (r *Remote) Run(ctx context.Context, text string, creds config.Credentials) (string, error) {
	key := r.key(creds)

	chunks := ChunkRunes(text, r.chunkSize)
	if len(chunks) <= 1 {
		out, err := r.completer.Complete(ctx, key, SystemPrompt, directPrompt+text, finalMaxTokens)
		if err != nil {
			return "", err
		}
		return EnsureSections(out), nil
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := r.completer.Complete(ctx, key, SystemPrompt, chunkPrompt+chunk, chunkMaxTokens)
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		partials = append(partials, out)
	}

	out, err := r.completer.Complete(ctx, key, SystemPrompt, combinePrompt+strings.Join(partials, " "), finalMaxTokens)
	if err != nil {
		return "", fmt.Errorf("combine: %w", err)
	}
	return EnsureSections(out), nil
}

// LocalModel summarizes word-bounded chunks with an on-device model and
// derives Key Points from the combined output.
type LocalModel struct {
	model     SummaryModel
	available func() error
	chunkSize int
	logger    *zap.Logger
}

// NewLocalModel creates the local model strategy. available may be nil.
func NewLocalModel(m SummaryModel, available func() error, chunkSize int, logger *zap.Logger) *LocalModel {
	if chunkSize <= 0 {
		chunkSize = config.DefaultLocalChunkSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalModel{model: m, available: available, chunkSize: chunkSize, logger: logger}
}

func (l *LocalModel) Info() strategy.Info {
	return strategy.Info{Name: config.StrategyLocalModel, Kind: model.KindLocal}
}

func (l *LocalModel) Available(config.Credentials) error {
	if l.available == nil {
		return nil
	}
	return l.available()
}

// Run skips chunks the model fails on and only fails when none succeed
func (l *LocalModel) Run(ctx context.Context, text string, _ config.Credentials) (string, error) {
	chunks := ChunkWords(text, l.chunkSize)
	if len(chunks) == 0 {
		return "", apperrors.ErrEmptyTranscription
	}

	summaries := make([]string, 0, len(chunks))
	var lastErr error
	for i, chunk := range chunks {
		out, err := l.model.Summarize(ctx, chunk)
		if err != nil {
			l.logger.Warn("error summarizing chunk", zap.Int("chunk", i), zap.Error(err))
			lastErr = err
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		summaries = append(summaries, out)
	}
	if len(summaries) == 0 {
		return "", fmt.Errorf("all %d chunks failed: %w", len(chunks), lastErr)
	}

	combined := strings.Join(summaries, " ")
	return Document(combined, KeyPoints(combined, config.DefaultKeyPointCount)), nil
}

// Extractive is the terminal rule-based strategy. It is total over all strings.
type Extractive struct{}

// NewExtractive creates the extractive strategy
func NewExtractive() *Extractive { return &Extractive{} }

func (Extractive) Info() strategy.Info {
	return strategy.Info{Name: config.StrategyExtractive, Kind: model.KindRule}
}

func (Extractive) Available(config.Credentials) error { return nil }

func (Extractive) Run(_ context.Context, text string, _ config.Credentials) (string, error) {
	return ExtractiveSummary(text), nil
}

// ExtractiveSummary selects the first three sentences, the two starting at
// the midpoint and the last three, then reports speaker statistics.
// Overlapping ranges are not deduplicated.
func ExtractiveSummary(text string) string {
	sentences := SplitSentences(text)
	n := len(sentences)

	selected := make([]string, 0, 8)
	selected = append(selected, sentences[:min(3, n)]...)
	mid := n / 2
	selected = append(selected, sentences[mid:min(mid+2, n)]...)
	selected = append(selected, sentences[max(0, n-3):]...)

	participants, changes := SpeakerStats(text)
	return Document(strings.Join(selected, " "), statsBullets(participants, n, changes))
}

package transcriber

import (
	"context"
	"strings"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/config"
)

// RemoteClient is a hosted speech-to-text service
type RemoteClient interface {
	Transcribe(ctx context.Context, apiKey string, audio model.AudioInput) (*model.TranscriptionResponse, error)
}

// LocalClient is an on-device speech-to-text model
type LocalClient interface {
	Transcribe(ctx context.Context, audio model.AudioInput) (*model.TranscriptionResponse, error)
}

// KeyFunc picks the credential a remote strategy needs
type KeyFunc func(creds config.Credentials) string

// Remote transcribes through a hosted service. Diarized segments become
// merged speaker turns; anything else becomes one generic-speaker turn.
type Remote struct {
	name   string
	client RemoteClient
	key    KeyFunc
}

// NewRemote creates a remote strategy
func NewRemote(name string, client RemoteClient, key KeyFunc) *Remote {
	return &Remote{name: name, client: client, key: key}
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

func (r *Remote) Run(ctx context.Context, audio model.AudioInput, creds config.Credentials) (model.Transcript, error) {
	resp, err := r.client.Transcribe(ctx, r.key(creds), audio)
	if err != nil {
		return model.Transcript{}, err
	}
	if resp == nil {
		return model.Transcript{}, apperrors.ErrResponseInvalid
	}

	if resp.HasSegments() && HasSpeakerTags(resp.Segments) {
		turns := MergeSpeakerSegments(resp.Segments)
		if len(turns) == 0 {
			return model.Transcript{}, apperrors.ErrEmptyTranscription
		}
		return model.Transcript{Turns: turns}, nil
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return model.Transcript{}, apperrors.ErrEmptyTranscription
	}
	return model.Transcript{Turns: []model.SpeakerTurn{{Speaker: model.DefaultSpeaker, Text: text}}}, nil
}

// Local transcribes on-device and synthesizes turns by length
type Local struct {
	name      string
	client    LocalClient
	available func() error
	threshold int
}

// NewLocal creates a local strategy. available may be nil.
func NewLocal(name string, client LocalClient, available func() error, threshold int) *Local {
	if threshold <= 0 {
		threshold = config.DefaultTurnThreshold
	}
	return &Local{name: name, client: client, available: available, threshold: threshold}
}

func (l *Local) Info() strategy.Info {
	return strategy.Info{Name: l.name, Kind: model.KindLocal}
}

func (l *Local) Available(config.Credentials) error {
	if l.available == nil {
		return nil
	}
	return l.available()
}

func (l *Local) Run(ctx context.Context, audio model.AudioInput, _ config.Credentials) (model.Transcript, error) {
	resp, err := l.client.Transcribe(ctx, audio)
	if err != nil {
		return model.Transcript{}, err
	}
	if resp == nil {
		return model.Transcript{}, apperrors.ErrResponseInvalid
	}

	texts := make([]string, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		texts = append(texts, seg.Text)
	}
	if len(texts) == 0 {
		texts = append(texts, resp.Text)
	}

	turns := ChunkSegments(texts, l.threshold)
	if strings.TrimSpace(model.Transcript{Turns: turns}.Content()) == "" {
		return model.Transcript{}, apperrors.ErrEmptyTranscription
	}
	return model.Transcript{Turns: turns}, nil
}

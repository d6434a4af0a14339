package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/app/summarizer"
	"call-summary/internal/app/testutil"
	"call-summary/internal/app/titles"
	"call-summary/internal/app/transcriber"
	"call-summary/internal/config"
)

type panickingSummarizer struct{}

func (panickingSummarizer) Summarize(context.Context, string, config.Credentials) (string, model.Outcome) {
	panic("boom")
}

func newTestPipeline(t *testing.T, remote *testutil.MockRemoteTranscriber) *Pipeline {
	t.Helper()
	tr := transcriber.New([]strategy.Strategy[model.AudioInput, model.Transcript]{
		transcriber.NewRemote(config.StrategyElevenLabs, remote, func(c config.Credentials) string { return c.ElevenLabs }),
	}, strategy.Options{})
	sum := summarizer.New([]strategy.Strategy[string, string]{summarizer.NewExtractive()}, strategy.Options{})
	rules := titles.NewRuleBased(rand.New(rand.NewSource(1)))
	sug := titles.New([]strategy.Strategy[string, []string]{rules}, rules, strategy.Options{})
	return NewPipeline(tr, sum, sug, nil)
}

func TestProcessEndToEnd(t *testing.T) {
	remote := testutil.NewMockRemoteTranscriber()
	remote.On("Transcribe", mock.Anything, "el-key", mock.Anything).Return(
		testutil.Segments([]string{"Hello.", "Let's discuss budget.", "Agreed."}, []string{"A", "B", "A"}), nil).Once()

	p := newTestPipeline(t, remote)
	res, err := p.Process(context.Background(), testutil.SampleAudio(), config.Credentials{ElevenLabs: "el-key"})

	require.NoError(t, err)
	assert.Equal(t, "Speaker A: Hello.\nSpeaker B: Let's discuss budget.\nSpeaker A: Agreed.", res.Transcript)
	assert.Contains(t, res.Summary, "## Meeting Summary")
	assert.Contains(t, res.Summary, "## Key Points")
	assert.Contains(t, res.Summary, "Meeting included 2 participants")
	assert.Contains(t, res.Summary, "The transcript contains 3 sentences")
	assert.Contains(t, res.Summary, "Total of 2 speaker changes occurred")
	assert.Len(t, res.Titles, titles.Count)

	require.Len(t, res.Outcomes, 3)
	assert.Equal(t, config.StrategyElevenLabs, res.Outcomes[0].Strategy)
	assert.Equal(t, config.StrategyExtractive, res.Outcomes[1].Strategy)
	assert.Equal(t, config.StrategyRuleBased, res.Outcomes[2].Strategy)
	assert.False(t, res.Degraded())
	remote.AssertExpectations(t)
}

func TestProcessWithoutCredentialsStillSucceeds(t *testing.T) {
	remote := testutil.NewMockRemoteTranscriber()
	p := newTestPipeline(t, remote)

	res, err := p.Process(context.Background(), testutil.SampleAudio(), config.Credentials{})

	require.NoError(t, err)
	assert.Contains(t, res.Transcript, "Transcription failed")
	assert.Contains(t, res.Summary, "## Key Points")
	assert.Len(t, res.Titles, titles.Count)
	assert.True(t, res.Degraded())
	remote.AssertNotCalled(t, "Transcribe")
}

func TestProcessRemoteFailure(t *testing.T) {
	remote := testutil.NewMockRemoteTranscriber()
	remote.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	p := newTestPipeline(t, remote)
	res, err := p.Process(context.Background(), testutil.SampleAudio(), config.Credentials{ElevenLabs: "el-key"})

	require.NoError(t, err)
	assert.Equal(t, strategy.FallbackName, res.Outcomes[0].Strategy)
	assert.Len(t, res.Titles, titles.Count)
}

func TestProcessEmptyUpload(t *testing.T) {
	p := newTestPipeline(t, testutil.NewMockRemoteTranscriber())
	_, err := p.Process(context.Background(), model.NewAudioInput("a.mp3", nil), config.Credentials{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyUpload)
}

func TestProcessCancelledContext(t *testing.T) {
	p := newTestPipeline(t, testutil.NewMockRemoteTranscriber())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, testutil.SampleAudio(), config.Credentials{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessRecoversPanics(t *testing.T) {
	remote := testutil.NewMockRemoteTranscriber()
	base := newTestPipeline(t, remote)
	p := NewPipeline(base.transcriber, panickingSummarizer{}, base.titles, nil)

	res, err := p.Process(context.Background(), testutil.SampleAudio(), config.Credentials{})

	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPipelineFailed)
	assert.Contains(t, err.Error(), "boom")
}

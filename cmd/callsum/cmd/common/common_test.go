package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"call-summary/internal/app"
	"call-summary/internal/client"
)

func TestNewSummarizer(t *testing.T) {
	for _, key := range []string{"CALLSUM_CONFIG", "OPENAI_API_KEY", "ELEVENLABS_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}
	t.Cleanup(func() { Local = false })

	Local = false
	remote, err := NewSummarizer(zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &client.Client{}, remote)

	Local = true
	local, err := NewSummarizer(zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &app.LocalRunner{}, local)
}

func TestDefaultServerURL(t *testing.T) {
	t.Setenv("CALLSUM_SERVER", "")
	assert.Equal(t, "http://localhost:8000", DefaultServerURL())

	t.Setenv("CALLSUM_SERVER", "http://summaries.internal:9000")
	assert.Equal(t, "http://summaries.internal:9000", DefaultServerURL())
}

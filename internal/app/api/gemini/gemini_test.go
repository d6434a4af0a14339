package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/strategy"
)

func TestCompleter_Complete(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"## Meeting Summary\n\n"},{"text":"All good."}]}}]}`))
	}))
	defer server.Close()

	c := NewCompleter("gemini-2.5-flash", server.URL, 0)
	out, err := c.Complete(context.Background(), "AIza-test", "You summarize meetings.", "Summarize this", 800)
	require.NoError(t, err)
	assert.Equal(t, "## Meeting Summary\n\nAll good.", out)

	assert.Contains(t, body, "systemInstruction")
	assert.Contains(t, body, "contents")
}

func TestCompleter_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := NewCompleter("gemini-2.5-flash", server.URL, 0).Complete(context.Background(), "AIza-test", "s", "u", 10)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyCompletion))
}

func TestCompleter_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	_, err := NewCompleter("gemini-2.5-flash", server.URL, 0).Complete(context.Background(), "AIza-test", "s", "u", 10)
	var se *strategy.Error
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Retryable)
}

func TestCompleter_MissingKey(t *testing.T) {
	_, err := NewCompleter("gemini-2.5-flash", "", 0).Complete(context.Background(), "", "s", "u", 10)
	assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))
}

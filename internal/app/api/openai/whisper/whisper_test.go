package whisper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
)

// TestRemoteTranscriber_Transcribe tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcribe(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		segments      int
		expectError   bool
		errorContains string
	}{
		{
			name:         "verbose transcription with segments",
			mockResponse: `{"task":"transcribe","language":"english","duration":4.2,"text":"Hello there. General Kenobi.","segments":[{"id":0,"start":0,"end":2.1,"text":" Hello there."},{"id":1,"start":2.1,"end":4.2,"text":" General Kenobi."}]}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello there. General Kenobi.",
			segments:     2,
		},
		{
			name:         "special characters",
			mockResponse: `{"text": "Hello, 世界! This is a test with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! This is a test with émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "Rate limit exceeded",
		},
		{
			name:         "invalid JSON response",
			mockResponse: `{"text": "incomplete JSON`,
			mockStatus:   http.StatusOK,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
				assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

				require.NoError(t, r.ParseMultipartForm(32<<20))
				assert.Equal(t, "whisper-1", r.FormValue("model"))
				assert.Equal(t, "verbose_json", r.FormValue("response_format"))

				file, header, err := r.FormFile("file")
				require.NoError(t, err)
				defer file.Close()
				assert.Equal(t, "call.mp3", header.Filename)
				data, _ := io.ReadAll(file)
				assert.Equal(t, "fake audio", string(data))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			rt := NewRemoteTranscriber(server.URL+"/v1", "", 0)
			result, err := rt.Transcribe(context.Background(), "sk-test", model.NewAudioInput("call.mp3", []byte("fake audio")))

			if tt.expectError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, result.Text)
			assert.Len(t, result.Segments, tt.segments)
			for _, seg := range result.Segments {
				assert.Empty(t, seg.Speaker)
			}
		})
	}
}

func TestRemoteTranscriber_ErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := NewRemoteTranscriber(server.URL+"/v1", "", 0).Transcribe(context.Background(), "sk-bad", model.NewAudioInput("a.wav", []byte("x")))
	var se *strategy.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, strategy.CodeAuth, se.Code)
	assert.False(t, se.Retryable)
}

func TestRemoteTranscriber_Preconditions(t *testing.T) {
	rt := NewRemoteTranscriber("", "", 0)

	_, err := rt.Transcribe(context.Background(), "", model.NewAudioInput("a.wav", []byte("x")))
	assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))

	_, err = rt.Transcribe(context.Background(), "sk-test", model.NewAudioInput("a.wav", nil))
	assert.True(t, errors.Is(err, apperrors.ErrEmptyUpload))
}

func TestUploadName(t *testing.T) {
	assert.Equal(t, "call.mp3", uploadName(model.NewAudioInput("call.mp3", nil)))
	assert.Equal(t, "audio", uploadName(model.AudioInput{}))
	assert.True(t, strings.HasSuffix(uploadName(model.AudioInput{Filename: "blob", Format: model.FormatWAV}), ".wav"))
}

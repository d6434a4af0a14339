package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"call-summary/internal/api/middleware"
	"call-summary/internal/api/v1/handlers"
	v1routes "call-summary/internal/api/v1/routes"
	"call-summary/internal/app/model"
	"call-summary/internal/app/testutil"
	"call-summary/internal/config"
)

var serverCreds = config.Credentials{OpenAI: "sk-server", Gemini: "AIza-server"}

func setupTestRouter(t *testing.T, pipeline *testutil.MockPipeline) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	v1routes.RegisterRoutes(router.Group("/api"), &v1routes.HandlerContainer{
		Summary: handlers.NewSummaryHandler(pipeline, serverCreds),
	})
	return router
}

func uploadRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("note", "no file"))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleResult() *model.Result {
	return &model.Result{
		Summary:    "## Meeting Summary\n\nHi\n\n## Key Points\n\n",
		Titles:     []string{"A", "B", "C"},
		Transcript: "Speaker A: Hello.",
		Outcomes: []model.Outcome{
			{Stage: model.StageTranscribe, Strategy: config.StrategyOpenAI},
			{Stage: model.StageSummarize, Strategy: config.StrategyExtractive, Degraded: true},
		},
	}
}

func TestSummaryHandler_Generate(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		field          string
		content        []byte
		apiKey         string
		setupMocks     func(*testutil.MockPipeline)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:    "successful summary",
			path:    "/api/generate-summary",
			field:   "audio_file",
			content: []byte("audio"),
			setupMocks: func(mp *testutil.MockPipeline) {
				mp.On("Process", mock.Anything, mock.MatchedBy(func(a model.AudioInput) bool {
					return a.Filename == "call.mp3" && a.Format == model.FormatMP3 && string(a.Data) == "audio"
				}), serverCreds).Return(sampleResult(), nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "## Meeting Summary\n\nHi\n\n## Key Points\n\n", body["summary"])
				assert.Equal(t, []interface{}{"A", "B", "C"}, body["suggested_titles"])
				assert.Equal(t, "Speaker A: Hello.", body["full_transcript"])
			},
		},
		{
			name:    "trailing slash",
			path:    "/api/generate-summary/",
			field:   "audio_file",
			content: []byte("audio"),
			setupMocks: func(mp *testutil.MockPipeline) {
				mp.On("Process", mock.Anything, mock.Anything, mock.Anything).Return(sampleResult(), nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Len(t, body["suggested_titles"], 3)
			},
		},
		{
			name:    "request key overrides openai only",
			path:    "/api/generate-summary",
			field:   "audio_file",
			content: []byte("audio"),
			apiKey:  "sk-request",
			setupMocks: func(mp *testutil.MockPipeline) {
				want := config.Credentials{OpenAI: "sk-request", Gemini: "AIza-server"}
				mp.On("Process", mock.Anything, mock.Anything, want).Return(sampleResult(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing upload",
			path:           "/api/generate-summary",
			setupMocks:     func(mp *testutil.MockPipeline) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
				assert.NotEmpty(t, body["request_id"])
			},
		},
		{
			name:           "empty upload",
			path:           "/api/generate-summary",
			field:          "audio_file",
			content:        []byte{},
			setupMocks:     func(mp *testutil.MockPipeline) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "uploaded file is empty", body["message"])
			},
		},
		{
			name:    "pipeline error",
			path:    "/api/generate-summary",
			field:   "audio_file",
			content: []byte("audio"),
			setupMocks: func(mp *testutil.MockPipeline) {
				mp.On("Process", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				assert.Equal(t, "Error processing audio: boom", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := testutil.NewMockPipeline()
			tt.setupMocks(pipeline)
			router := setupTestRouter(t, pipeline)

			req := uploadRequest(t, tt.path, tt.field, "call.mp3", tt.content)
			if tt.apiKey != "" {
				req.Header.Set(handlers.APIKeyHeader, tt.apiKey)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, decode(t, rec))
			}
			pipeline.AssertExpectations(t)
		})
	}
}

func TestSummaryHandler_DegradedHeader(t *testing.T) {
	pipeline := testutil.NewMockPipeline()
	pipeline.On("Process", mock.Anything, mock.Anything, mock.Anything).Return(sampleResult(), nil)
	router := setupTestRouter(t, pipeline)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/api/generate-summary", "audio_file", "call.wav", []byte("x")))

	assert.Equal(t, "true", rec.Header().Get(handlers.DegradedHeader))
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/app/testutil"
	"call-summary/internal/config"
)

func newTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	t.Helper()
	cfg := config.Default()
	cfg.Environment = "test"
	cfg.Server.MaxUploadMB = 1
	registry := prometheus.NewRegistry()
	return NewServer(cfg, testutil.NewMockPipeline(), registry, zap.NewNop()), registry
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Origin", "http://localhost:8501")
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestWelcome(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to the Call Summarizer API")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, http.MethodOptions, "/api/generate-summary")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestMetricsExposeStrategyCounters(t *testing.T) {
	s, registry := newTestServer(t)
	chain := strategy.NewChain(model.StageTitle, []strategy.Strategy[string, string]{
		strategy.Func[string, string]{
			Meta: strategy.Info{Name: config.StrategyRuleBased, Kind: model.KindRule},
			RunFn: func(context.Context, string, config.Credentials) (string, error) {
				return "ok", nil
			},
		},
	}, nil, strategy.Options{Metrics: strategy.NewMetrics(registry)})
	_, _, err := chain.Execute(context.Background(), "summary", config.Credentials{})
	require.NoError(t, err)

	rec := serve(s, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`callsum_strategy_attempts_total{result="success",stage="title",strategy="rule_based"} 1`)
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"not_found"`)
}

func TestUploadTooLarge(t *testing.T) {
	s, _ := newTestServer(t)
	body := strings.NewReader(strings.Repeat("x", 2<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/generate-summary", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Package common holds the flags shared by every callsum subcommand.
package common

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"call-summary/internal/api/v1/dto"
	"call-summary/internal/app"
	"call-summary/internal/app/logging"
	"call-summary/internal/client"
	"call-summary/internal/config"
)

// DefaultTimeout leaves room for long recordings on slow strategies
const DefaultTimeout = 20 * time.Minute

var (
	ConfigFile string
	ServerURL  string
	APIKey     string
	Timeout    time.Duration
	Verbose    bool
	Local      bool
)

// Summarizer turns a recording on disk into a summary response
type Summarizer interface {
	SummarizeFile(ctx context.Context, path string) (*dto.GenerateSummaryResponse, error)
}

// DefaultServerURL honours CALLSUM_SERVER, falling back to the local default port
func DefaultServerURL() string {
	if url := os.Getenv("CALLSUM_SERVER"); url != "" {
		return url
	}
	return "http://localhost:" + config.DefaultHTTPPort
}

// NewClient builds an API client from the shared flags
func NewClient() *client.Client {
	return client.New(ServerURL, client.WithAPIKey(APIKey), client.WithTimeout(Timeout))
}

// NewLogger builds a console logger for client-side commands
func NewLogger() *zap.Logger {
	level := "info"
	if Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(true, level)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewSummarizer runs the pipeline in-process with --local, otherwise it uploads to the server
func NewSummarizer(logger *zap.Logger) (Summarizer, error) {
	if !Local {
		return NewClient(), nil
	}
	cfg, err := config.Load(config.ConfigPath(ConfigFile))
	if err != nil {
		return nil, err
	}
	return app.NewLocalRunner(cfg, logger, APIKey)
}

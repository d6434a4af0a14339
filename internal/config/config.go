package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete runtime configuration of the service
type Config struct {
	Environment     string                `yaml:"environment" validate:"oneof=development production test"`
	LogLevel        string                `yaml:"log_level" validate:"oneof=debug info warn error"`
	Server          ServerConfig          `yaml:"server"`
	Pipeline        PipelineConfig        `yaml:"pipeline"`
	OpenAI          OpenAIConfig          `yaml:"openai"`
	ElevenLabs      ElevenLabsConfig      `yaml:"elevenlabs"`
	Gemini          GeminiConfig          `yaml:"gemini"`
	WhisperServer   WhisperServerConfig   `yaml:"whisper_server"`
	WhisperCpp      WhisperCppConfig      `yaml:"whisper_cpp"`
	LocalSummarizer LocalSummarizerConfig `yaml:"local_summarizer"`

	// Credentials come from the environment only
	Credentials Credentials `yaml:"-"`
}

// ServerConfig configures the HTTP front end
type ServerConfig struct {
	Host        string   `yaml:"host" validate:"required"`
	Port        string   `yaml:"port" validate:"required,numeric,max=5"`
	MaxUploadMB int      `yaml:"max_upload_mb" validate:"min=1,max=2048"`
	CORSOrigins []string `yaml:"cors_origins"`
	// RequestTimeout bounds one generate-summary call end to end
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// PipelineConfig holds the strategy orders and shared thresholds
type PipelineConfig struct {
	TranscriberOrder []string      `yaml:"transcriber_order" validate:"min=1,dive,required"`
	SummarizerOrder  []string      `yaml:"summarizer_order" validate:"min=1,dive,required"`
	TitleOrder       []string      `yaml:"title_order" validate:"min=1,dive,required"`
	TurnThreshold    int           `yaml:"turn_threshold" validate:"min=1,max=10000"`
	RemoteChunkSize  int           `yaml:"remote_chunk_size" validate:"min=100"`
	LocalChunkSize   int           `yaml:"local_chunk_size" validate:"min=10"`
	MaxRetries       int           `yaml:"max_retries" validate:"min=0,max=10"`
	RetryDelay       time.Duration `yaml:"retry_delay"`
}

// OpenAIConfig configures both the transcription and chat endpoints
type OpenAIConfig struct {
	BaseURL            string        `yaml:"base_url" validate:"omitempty,url"`
	TranscriptionModel string        `yaml:"transcription_model" validate:"required"`
	ChatModel          string        `yaml:"chat_model" validate:"required"`
	Timeout            time.Duration `yaml:"timeout"`
}

// ElevenLabsConfig configures the diarizing speech-to-text API
type ElevenLabsConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Model   string        `yaml:"model" validate:"required"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeminiConfig configures the Gemini text model
type GeminiConfig struct {
	Model   string        `yaml:"model" validate:"required"`
	Timeout time.Duration `yaml:"timeout"`
}

// WhisperServerConfig points at a whisper.cpp HTTP server.
// An empty URL marks the strategy unavailable.
type WhisperServerConfig struct {
	URL      string        `yaml:"url" validate:"omitempty,url"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

// WhisperCppConfig configures the local whisper.cpp binary
type WhisperCppConfig struct {
	BinaryPath string        `yaml:"binary_path"`
	ModelPath  string        `yaml:"model_path"`
	Language   string        `yaml:"language"`
	Timeout    time.Duration `yaml:"timeout"`
}

// LocalSummarizerConfig points at a local summarization model server
type LocalSummarizerConfig struct {
	URL       string        `yaml:"url" validate:"omitempty,url"`
	MinLength int           `yaml:"min_length" validate:"min=1"`
	MaxLength int           `yaml:"max_length" validate:"gtfield=MinLength"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Default returns a configuration with every field populated
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		Server: ServerConfig{
			Host:           DefaultHTTPHost,
			Port:           DefaultHTTPPort,
			MaxUploadMB:    DefaultMaxUploadMB,
			CORSOrigins:    []string{"*"},
			RequestTimeout: DefaultRequestTimeout,
		},
		Pipeline: PipelineConfig{
			TranscriberOrder: append([]string(nil), DefaultTranscriberOrder...),
			SummarizerOrder:  append([]string(nil), DefaultSummarizerOrder...),
			TitleOrder:       append([]string(nil), DefaultTitleOrder...),
			TurnThreshold:    DefaultTurnThreshold,
			RemoteChunkSize:  DefaultRemoteChunkSize,
			LocalChunkSize:   DefaultLocalChunkSize,
			MaxRetries:       DefaultRetries,
			RetryDelay:       DefaultRetryDelay,
		},
		OpenAI: OpenAIConfig{
			TranscriptionModel: DefaultOpenAITranscriptionModel,
			ChatModel:          DefaultOpenAIChatModel,
			Timeout:            DefaultOpenAITimeout,
		},
		ElevenLabs: ElevenLabsConfig{
			BaseURL: DefaultElevenLabsBaseURL,
			Model:   DefaultElevenLabsModel,
			Timeout: DefaultElevenLabsTimeout,
		},
		Gemini: GeminiConfig{
			Model:   DefaultGeminiModel,
			Timeout: DefaultGeminiTimeout,
		},
		WhisperServer: WhisperServerConfig{
			Language: DefaultWhisperLanguage,
			Timeout:  DefaultHTTPTimeout,
		},
		WhisperCpp: WhisperCppConfig{
			Language: DefaultWhisperLanguage,
			Timeout:  DefaultWhisperCppTimeout,
		},
		LocalSummarizer: LocalSummarizerConfig{
			MinLength: DefaultLocalMinLength,
			MaxLength: DefaultLocalMaxLength,
			Timeout:   DefaultLocalSummarizerTimeout,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		// Allow ${VAR} references inside the file
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	creds, err := GetCredentials()
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath resolves the config file location from CALLSUM_CONFIG
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CALLSUM_CONFIG")
}

func (c *Config) applyEnv() {
	c.Environment = getEnvOrDefault("APP_ENV", c.Environment)
	c.LogLevel = strings.ToLower(getEnvOrDefault("LOG_LEVEL", c.LogLevel))

	c.Server.Host = getEnvOrDefault("HTTP_HOST", c.Server.Host)
	c.Server.Port = getEnvOrDefault("HTTP_PORT", c.Server.Port)

	c.OpenAI.BaseURL = getEnvOrDefault("OPENAI_BASE_URL", c.OpenAI.BaseURL)
	c.WhisperServer.URL = getEnvOrDefault("WHISPER_SERVER_URL", c.WhisperServer.URL)
	c.WhisperCpp.BinaryPath = getEnvOrDefault("WHISPER_CPP_BINARY", c.WhisperCpp.BinaryPath)
	c.WhisperCpp.ModelPath = getEnvOrDefault("WHISPER_CPP_MODEL", c.WhisperCpp.ModelPath)
	c.LocalSummarizer.URL = getEnvOrDefault("LOCAL_SUMMARIZER_URL", c.LocalSummarizer.URL)

	if v := os.Getenv("CALLSUM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Pipeline.MaxRetries = n
		}
	}
	if v := os.Getenv("CALLSUM_TRANSCRIBER_ORDER"); v != "" {
		c.Pipeline.TranscriberOrder = splitList(v)
	}
	if v := os.Getenv("CALLSUM_SUMMARIZER_ORDER"); v != "" {
		c.Pipeline.SummarizerOrder = splitList(v)
	}
	if v := os.Getenv("CALLSUM_TITLE_ORDER"); v != "" {
		c.Pipeline.TitleOrder = splitList(v)
	}
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

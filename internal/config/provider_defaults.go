package config

import "time"

// Strategy names accepted in the pipeline orders
const (
	StrategyOpenAI        = "openai"
	StrategyElevenLabs    = "elevenlabs"
	StrategyGemini        = "gemini"
	StrategyWhisperServer = "whisper_server"
	StrategyWhisperCpp    = "whisper_cpp"
	StrategyLocalModel    = "local_model"
	StrategyExtractive    = "extractive"
	StrategyRuleBased     = "rule_based"
)

// Pipeline defaults
const (
	DefaultTurnThreshold   = 200
	DefaultRemoteChunkSize = 10000
	DefaultLocalChunkSize  = 1000
	DefaultLocalMinLength  = 50
	DefaultLocalMaxLength  = 150
	DefaultKeyPointCount   = 5
	DefaultRetries         = 0
	DefaultRetryDelay      = 1 * time.Second
)

// Timeout defaults
const (
	DefaultWhisperCppTimeout      = 300 * time.Second
	DefaultOpenAITimeout          = 120 * time.Second
	DefaultElevenLabsTimeout      = 120 * time.Second
	DefaultGeminiTimeout          = 60 * time.Second
	DefaultHTTPTimeout            = 120 * time.Second
	DefaultLocalSummarizerTimeout = 300 * time.Second
)

// Model defaults
const (
	DefaultOpenAITranscriptionModel = "whisper-1"
	DefaultOpenAIChatModel          = "gpt-3.5-turbo"
	DefaultGeminiModel              = "gemini-2.5-flash"
	DefaultElevenLabsModel          = "scribe_v1"
	DefaultElevenLabsBaseURL        = "https://api.elevenlabs.io/v1"
	DefaultWhisperLanguage          = "auto"
)

// Server defaults
const (
	DefaultHTTPHost    = "0.0.0.0"
	DefaultHTTPPort    = "8000"
	DefaultMaxUploadMB = 100

	DefaultRequestTimeout  = 15 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// DefaultTranscriberOrder is tried left to right
var DefaultTranscriberOrder = []string{StrategyOpenAI, StrategyElevenLabs, StrategyWhisperServer, StrategyWhisperCpp}

// DefaultSummarizerOrder is tried left to right
var DefaultSummarizerOrder = []string{StrategyOpenAI, StrategyGemini, StrategyLocalModel, StrategyExtractive}

// DefaultTitleOrder is tried left to right
var DefaultTitleOrder = []string{StrategyOpenAI, StrategyGemini, StrategyRuleBased}

// KnownStrategies lists the strategies each stage can build
var KnownStrategies = map[string][]string{
	"transcriber": {StrategyOpenAI, StrategyElevenLabs, StrategyWhisperServer, StrategyWhisperCpp},
	"summarizer":  {StrategyOpenAI, StrategyGemini, StrategyLocalModel, StrategyExtractive},
	"title":       {StrategyOpenAI, StrategyGemini, StrategyRuleBased},
}

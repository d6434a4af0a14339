package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"call-summary/internal/app/audio"
	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
)

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	timeout    time.Duration
	logger     *zap.Logger

	// prepare turns the stored upload into a 16kHz WAV path
	prepare func(ctx context.Context, path string) (string, error)
}

// Output mirrors the JSON file whisper.cpp writes with -oj
type Output struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []OutputSegment `json:"transcription"`
}

// OutputSegment is one decoded segment; offsets are milliseconds
type OutputSegment struct {
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath, language string, timeout time.Duration, logger *zap.Logger) *LocalTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	if language == "" {
		language = "auto"
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		timeout:    timeout,
		logger:     logger,
		prepare:    ensure16kHzWav,
	}
}

// Available checks that the binary and model exist on disk
func (lt *LocalTranscriber) Available() error {
	if lt.binaryPath == "" || lt.modelPath == "" {
		return apperrors.Wrap(apperrors.ErrModelUnavailable, "whisper.cpp binary or model not configured")
	}
	if _, err := os.Stat(lt.binaryPath); err != nil {
		return apperrors.Wrapf(apperrors.ErrModelUnavailable, "whisper.cpp binary %s", lt.binaryPath)
	}
	if _, err := os.Stat(lt.modelPath); err != nil {
		return apperrors.Wrapf(apperrors.ErrModelUnavailable, "whisper.cpp model %s", lt.modelPath)
	}
	return nil
}

// Transcribe writes the upload to a temp dir, converts it to 16kHz WAV
// when needed, runs whisper.cpp and parses its JSON output.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, input model.AudioInput) (*model.TranscriptionResponse, error) {
	if err := lt.Available(); err != nil {
		return nil, err
	}
	if len(input.Data) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}
	startTime := time.Now()

	if lt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lt.timeout)
		defer cancel()
	}

	inputFilePath, cleanup, err := audio.WriteTemp(input)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	wavPath, err := lt.prepare(ctx, inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("error converting input file: %w", err)
	}

	outputBase := filepath.Join(filepath.Dir(inputFilePath), "transcript")
	args := []string{
		"-m", lt.modelPath,
		"-l", lt.language,
		"-oj",
		"-f", wavPath,
		"-of", outputBase,
	}

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	lt.logger.Debug("running whisper.cpp",
		zap.String("binary", lt.binaryPath),
		zap.String("args", strings.Join(args, " ")))

	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(outputBase + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}

	response, err := ParseOutput(data)
	if err != nil {
		return nil, err
	}
	response.ProcessingTime = time.Since(startTime)
	response.ModelUsed = filepath.Base(lt.modelPath)

	lt.logger.Debug("whisper.cpp finished",
		zap.Int("segments", len(response.Segments)),
		zap.Duration("elapsed", response.ProcessingTime))
	return response, nil
}

// ParseOutput converts whisper.cpp JSON into a transcription response
func ParseOutput(data []byte) (*model.TranscriptionResponse, error) {
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper.cpp output: %w", err)
	}

	response := &model.TranscriptionResponse{Language: out.Result.Language}
	var text strings.Builder
	for i, seg := range out.Transcription {
		response.Segments = append(response.Segments, model.TranscriptionSegment{
			ID:    i,
			Text:  seg.Text,
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
		})
		text.WriteString(seg.Text)
	}
	response.Text = strings.TrimSpace(text.String())
	if n := len(out.Transcription); n > 0 {
		response.Duration = time.Duration(out.Transcription[n-1].Offsets.To) * time.Millisecond
	}

	if response.Text == "" {
		return nil, apperrors.ErrEmptyTranscription
	}
	return response, nil
}

func ensure16kHzWav(ctx context.Context, path string) (string, error) {
	ok, err := audio.Is16kHzWavFile(ctx, path)
	if err == nil && ok {
		return path, nil
	}
	return audio.ConvertTo16kHzWav(ctx, path)
}

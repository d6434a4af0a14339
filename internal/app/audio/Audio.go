package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"call-summary/internal/app/model"
)

// Available reports whether ffmpeg and ffprobe are on PATH
func Available() error {
	for _, bin := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found in PATH: %w", bin, err)
		}
	}
	return nil
}

// GetAudioDuration returns the duration of filePath in whole seconds
func GetAudioDuration(ctx context.Context, filePath string) (int, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's bare duration output, rounding to seconds
func ParseDuration(output string) (int, error) {
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(durationFloat)), nil
}

// Is16kHzWavFile reports whether filePath already has a 16kHz PCM stream
func Is16kHzWavFile(ctx context.Context, filePath string) (bool, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}
	return Is16kHzWavProbe(output)
}

// Is16kHzWavProbe inspects ffprobe JSON output
func Is16kHzWavProbe(output []byte) (bool, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}
	return false, nil
}

// ConvertTo16kHzWav writes a mono 16kHz PCM copy next to inputFilePath
// and returns its path. An existing converted file is reused.
func ConvertTo16kHzWav(ctx context.Context, inputFilePath string) (string, error) {
	outputFilePath := Wav16kPath(inputFilePath)
	if _, err := os.Stat(outputFilePath); err == nil {
		return outputFilePath, nil
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return outputFilePath, nil
}

// Wav16kPath is the conversion target for inputFilePath
func Wav16kPath(inputFilePath string) string {
	return strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
}

// WriteTemp stores the upload in a fresh temp directory. The returned
// cleanup removes the directory and everything derived from the file.
func WriteTemp(input model.AudioInput) (string, func(), error) {
	dir, err := os.MkdirTemp("", "callsum-*")
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	ext := input.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(input.Filename))
	}
	if ext == "" {
		ext = ".wav"
	}
	path := filepath.Join(dir, "input"+ext)
	if err := os.WriteFile(path, input.Data, 0o600); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("failed to write temp audio: %w", err)
	}
	return path, cleanup, nil
}

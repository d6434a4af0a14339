package whisper_cpp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
)

const sampleOutput = `{
  "result": {"language": "en"},
  "transcription": [
    {"timestamps": {"from": "00:00:00,000", "to": "00:00:02,000"}, "offsets": {"from": 0, "to": 2000}, "text": " And so my fellow Americans,"},
    {"timestamps": {"from": "00:00:02,000", "to": "00:00:05,500"}, "offsets": {"from": 2000, "to": 5500}, "text": " ask not what your country can do for you."}
  ]
}`

func TestParseOutput(t *testing.T) {
	resp, err := ParseOutput([]byte(sampleOutput))
	require.NoError(t, err)

	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "And so my fellow Americans, ask not what your country can do for you.", resp.Text)
	require.Len(t, resp.Segments, 2)
	assert.Equal(t, 2.0, resp.Segments[1].Start)
	assert.Equal(t, 5.5, resp.Segments[1].End)
	assert.Equal(t, " ask not what your country can do for you.", resp.Segments[1].Text)
}

func TestParseOutputErrors(t *testing.T) {
	_, err := ParseOutput([]byte(`{"transcription": []}`))
	assert.True(t, errors.Is(err, apperrors.ErrEmptyTranscription))

	_, err = ParseOutput([]byte(`{`))
	assert.Error(t, err)
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "whisper-cli")
	modelPath := filepath.Join(dir, "ggml-base.bin")

	lt := NewLocalTranscriber("", "", "", 0, nil)
	assert.True(t, errors.Is(lt.Available(), apperrors.ErrModelUnavailable))

	lt = NewLocalTranscriber(bin, modelPath, "", 0, nil)
	assert.Error(t, lt.Available())

	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(modelPath, []byte("model"), 0o644))
	assert.NoError(t, lt.Available())
}

// TestTranscribeWithFakeBinary runs a shell script standing in for whisper.cpp
func TestTranscribeWithFakeBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script binary")
	}

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "ggml-base.bin")
	require.NoError(t, os.WriteFile(modelPath, []byte("model"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.json"), []byte(sampleOutput), 0o644))

	// Copies the canned output to the path given after -of
	script := `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-of" ]; then out="$2"; fi
  shift
done
cp "` + filepath.Join(dir, "out.json") + `" "$out.json"
`
	bin := filepath.Join(dir, "whisper-cli")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	lt := NewLocalTranscriber(bin, modelPath, "en", 0, nil)
	lt.prepare = func(ctx context.Context, path string) (string, error) { return path, nil }

	resp, err := lt.Transcribe(context.Background(), model.NewAudioInput("call.wav", []byte("RIFF")))
	require.NoError(t, err)
	assert.Len(t, resp.Segments, 2)
	assert.Equal(t, "ggml-base.bin", resp.ModelUsed)
}

func TestTranscribeBinaryFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script binary")
	}

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "ggml-base.bin")
	require.NoError(t, os.WriteFile(modelPath, []byte("model"), 0o644))
	bin := filepath.Join(dir, "whisper-cli")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\necho 'failed to load model' >&2\nexit 1\n"), 0o755))

	lt := NewLocalTranscriber(bin, modelPath, "en", 0, nil)
	lt.prepare = func(ctx context.Context, path string) (string, error) { return path, nil }

	_, err := lt.Transcribe(context.Background(), model.NewAudioInput("call.wav", []byte("RIFF")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load model")
}

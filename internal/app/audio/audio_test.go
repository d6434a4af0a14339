package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-summary/internal/app/model"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name             string
		ffprobeOutput    string
		expectedDuration int
		expectError      bool
	}{
		{name: "whole seconds", ffprobeOutput: "120.000000\n", expectedDuration: 120},
		{name: "rounds up", ffprobeOutput: "59.6", expectedDuration: 60},
		{name: "rounds down", ffprobeOutput: "  3.2  ", expectedDuration: 3},
		{name: "garbage", ffprobeOutput: "N/A", expectError: true},
		{name: "empty", ffprobeOutput: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDuration(tt.ffprobeOutput)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDuration, d)
		})
	}
}

func TestIs16kHzWavProbe(t *testing.T) {
	ok, err := Is16kHzWavProbe([]byte(`{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"16000"}]}`))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Is16kHzWavProbe([]byte(`{"streams":[{"codec_type":"video","codec_name":"h264"},{"codec_type":"audio","codec_name":"mp3","sample_rate":"44100"}]}`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Is16kHzWavProbe([]byte(`not json`))
	assert.Error(t, err)
}

func TestWav16kPath(t *testing.T) {
	assert.Equal(t, "/test/audio_16khz.wav", Wav16kPath("/test/audio.mp3"))
	assert.Equal(t, "/test/audio_16khz.wav", Wav16kPath("/test/audio"))
}

func TestWriteTemp(t *testing.T) {
	path, cleanup, err := WriteTemp(model.NewAudioInput("meeting.m4a", []byte("data")))
	require.NoError(t, err)
	assert.Equal(t, ".m4a", filepath.Ext(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	cleanup()
	_, err = os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(err))

	path, cleanup, err = WriteTemp(model.AudioInput{Data: []byte("x")})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, ".wav", filepath.Ext(path))
}

package model

import (
	"path/filepath"
	"strings"
)

// AudioFormat defines supported audio formats
type AudioFormat string

const (
	FormatWAV  AudioFormat = "wav"
	FormatMP3  AudioFormat = "mp3"
	FormatM4A  AudioFormat = "m4a"
	FormatFLAC AudioFormat = "flac"
	FormatOGG  AudioFormat = "ogg"
	FormatAMR  AudioFormat = "amr"
	FormatWEBM AudioFormat = "webm"
	FormatMP4  AudioFormat = "mp4"
	FormatMPEG AudioFormat = "mpeg"
	FormatMPGA AudioFormat = "mpga"
)

// AudioInput is an uploaded recording. It lives for one request only.
type AudioInput struct {
	Filename string
	Format   AudioFormat
	Data     []byte
}

// NewAudioInput builds an AudioInput, deriving the format from the filename extension.
func NewAudioInput(filename string, data []byte) AudioInput {
	return AudioInput{
		Filename: filename,
		Format:   GetAudioFormatFromFilename(filename),
		Data:     data,
	}
}

// Extension returns the declared extension including the leading dot, or ""
func (a AudioInput) Extension() string {
	if a.Format == "" {
		return ""
	}
	return "." + string(a.Format)
}

// IsValidAudioFormat checks if the given format is supported
func IsValidAudioFormat(format string) bool {
	switch AudioFormat(strings.ToLower(format)) {
	case FormatWAV, FormatMP3, FormatM4A, FormatFLAC, FormatOGG, FormatAMR, FormatWEBM,
		FormatMP4, FormatMPEG, FormatMPGA:
		return true
	default:
		return false
	}
}

// GetAudioFormatFromFilename extracts audio format from filename.
// Unknown extensions yield an empty format.
func GetAudioFormatFromFilename(filename string) AudioFormat {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !IsValidAudioFormat(ext) {
		return ""
	}
	return AudioFormat(ext)
}

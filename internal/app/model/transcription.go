package model

import "time"

// TranscriptionResponse is the normalised result of any speech-to-text collaborator
type TranscriptionResponse struct {
	Text     string        `json:"text"`
	Language string        `json:"language,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`

	// Segments is empty when the collaborator returns a flat transcript only
	Segments []TranscriptionSegment `json:"segments,omitempty"`

	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	ModelUsed      string        `json:"model_used,omitempty"`
}

// TranscriptionSegment represents a time-segmented piece of transcription
type TranscriptionSegment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"` // Start time in seconds
	End   float64 `json:"end"`   // End time in seconds

	// Speaker is optional; most collaborators never set it
	Speaker string `json:"speaker,omitempty"`
}

// HasSegments reports whether segment-level metadata is present
func (r *TranscriptionResponse) HasSegments() bool {
	return r != nil && len(r.Segments) > 0
}

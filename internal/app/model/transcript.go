package model

import "strings"

// DefaultSpeaker labels turns that carry no diarization information.
const DefaultSpeaker = "Speaker"

// SpeakerTurn is a contiguous run of transcript text attributed to one speaker.
type SpeakerTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Transcript is an ordered list of speaker turns.
type Transcript struct {
	Turns []SpeakerTurn `json:"turns"`
}

// Content concatenates all turn texts in order.
func (t Transcript) Content() string {
	var b strings.Builder
	for _, turn := range t.Turns {
		b.WriteString(turn.Text)
	}
	return b.String()
}

// String renders one "<speaker>: <text>" line per turn.
func (t Transcript) String() string {
	lines := make([]string, 0, len(t.Turns))
	for _, turn := range t.Turns {
		lines = append(lines, turn.Speaker+": "+strings.TrimSpace(turn.Text))
	}
	return strings.Join(lines, "\n")
}

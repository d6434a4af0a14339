package transcriber

import (
	"strings"
	"unicode/utf8"

	"call-summary/internal/app/model"
)

// UnknownSpeaker labels a segment without a tag inside a diarized response
const UnknownSpeaker = "Speaker Unknown"

// SpeakerLabel renders a diarization tag as a transcript label
func SpeakerLabel(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return UnknownSpeaker
	}
	// ElevenLabs tags look like "speaker_0"
	if rest, ok := strings.CutPrefix(strings.ToLower(tag), "speaker_"); ok && rest != "" {
		tag = rest
	}
	return "Speaker " + tag
}

// HasSpeakerTags reports whether any segment carries diarization metadata
func HasSpeakerTags(segments []model.TranscriptionSegment) bool {
	for _, seg := range segments {
		if strings.TrimSpace(seg.Speaker) != "" {
			return true
		}
	}
	return false
}

// MergeSpeakerSegments starts a new turn only when the speaker label changes;
// adjacent same-speaker segments are joined with a single space.
func MergeSpeakerSegments(segments []model.TranscriptionSegment) []model.SpeakerTurn {
	var turns []model.SpeakerTurn
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		label := SpeakerLabel(seg.Speaker)

		if n := len(turns); n > 0 && turns[n-1].Speaker == label {
			turns[n-1].Text += " " + text
			continue
		}
		turns = append(turns, model.SpeakerTurn{Speaker: label, Text: text})
	}
	return turns
}

// ChunkSegments accumulates segment text and flushes a generic-speaker turn
// whenever the buffer grows past threshold characters. Segment text is kept
// verbatim so the turns concatenate back to the original content.
func ChunkSegments(texts []string, threshold int) []model.SpeakerTurn {
	var turns []model.SpeakerTurn
	var buf strings.Builder

	for _, text := range texts {
		buf.WriteString(text)
		if utf8.RuneCountInString(buf.String()) > threshold {
			turns = append(turns, model.SpeakerTurn{Speaker: model.DefaultSpeaker, Text: buf.String()})
			buf.Reset()
		}
	}
	if buf.Len() > 0 {
		turns = append(turns, model.SpeakerTurn{Speaker: model.DefaultSpeaker, Text: buf.String()})
	}
	return turns
}

// FailureTranscript is the terminal fallback: a single turn describing err
func FailureTranscript(err error) model.Transcript {
	return model.Transcript{Turns: []model.SpeakerTurn{{
		Speaker: model.DefaultSpeaker,
		Text:    "Transcription failed: " + err.Error(),
	}}}
}

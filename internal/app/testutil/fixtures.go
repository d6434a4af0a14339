package testutil

import (
	"strconv"
	"strings"

	"call-summary/internal/app/model"
)

// ThreeSentenceTranscript is the smallest multi-speaker conversation used across tests
const ThreeSentenceTranscript = "Speaker A: Hello. Speaker B: Let's discuss budget. Speaker A: Agreed."

// BudgetSummary repeats topic words at known frequencies
const BudgetSummary = "## Meeting Summary\n\nBudget budget budget planning planning review"

// SampleAudio is a tiny fake upload
func SampleAudio() model.AudioInput {
	return model.NewAudioInput("meeting.mp3", []byte("ID3fake-audio-bytes"))
}

// RepeatToLength repeats unit until the result has exactly n bytes.
// unit should be ASCII so byte and character counts agree.
func RepeatToLength(unit string, n int) string {
	if unit == "" || n <= 0 {
		return ""
	}
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(unit)
	}
	return b.String()[:n]
}

// Conversation builds a transcript of n alternating two-speaker sentences
func Conversation(n int) string {
	speakers := []string{"Speaker A", "Speaker B"}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, speakers[i%2]+": We reviewed item number "+strconv.Itoa(i)+" of the roadmap.")
	}
	return strings.Join(lines, " ")
}

package summarizer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	summaryHeader   = "## Meeting Summary"
	keyPointsHeader = "## Key Points"
	keyPointsMarker = "Key Points"
)

// Document assembles the two-section Markdown summary
func Document(narrative string, bullets []string) string {
	var b strings.Builder
	b.WriteString(summaryHeader + "\n\n")
	b.WriteString(narrative + "\n\n")
	b.WriteString(keyPointsHeader + "\n\n")
	for _, bullet := range bullets {
		b.WriteString("- " + bullet + "\n")
	}
	return b.String()
}

// KeyPoints picks up to limit sentences from the first limit sentences of
// text, skipping those of 10 characters or fewer.
func KeyPoints(text string, limit int) []string {
	sentences := SplitSentences(text)
	if len(sentences) > limit {
		sentences = sentences[:limit]
	}
	var points []string
	for _, s := range sentences {
		if utf8.RuneCountInString(s) > 10 {
			points = append(points, s)
		}
	}
	return points
}

// EnsureSections wraps free-form model output that lacks a Key Points
// section so every summary exposes the same two headers.
func EnsureSections(summary string) string {
	summary = strings.TrimSpace(summary)
	if strings.Contains(summary, keyPointsMarker) {
		return summary
	}
	return Document(summary, KeyPoints(summary, 5))
}

// statsBullets renders the extractive Key Points
func statsBullets(participants, sentences, changes int) []string {
	return []string{
		fmt.Sprintf("Meeting included %d participants", participants),
		fmt.Sprintf("The transcript contains %d sentences", sentences),
		fmt.Sprintf("Total of %d speaker changes occurred", changes),
	}
}

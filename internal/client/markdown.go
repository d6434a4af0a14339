package client

import (
	"os"
	"path/filepath"
	"strings"

	"call-summary/internal/api/v1/dto"
)

// Markdown renders a summary response as a standalone document
func Markdown(resp *dto.GenerateSummaryResponse) string {
	var b strings.Builder
	if len(resp.SuggestedTitles) > 0 {
		b.WriteString("# " + resp.SuggestedTitles[0] + "\n\n")
	}
	b.WriteString(strings.TrimSpace(resp.Summary))
	b.WriteString("\n\n## Suggested Titles\n\n")
	for _, t := range resp.SuggestedTitles {
		b.WriteString("- " + t + "\n")
	}
	b.WriteString("\n## Transcript\n\n")
	b.WriteString(resp.FullTranscript)
	b.WriteString("\n")
	return b.String()
}

// SummaryPath is where the summary of the recording at audioPath is written
func SummaryPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + ".summary.md"
}

// WriteMarkdown writes the rendered response next to the recording and returns its path
func WriteMarkdown(audioPath string, resp *dto.GenerateSummaryResponse) (string, error) {
	out := SummaryPath(audioPath)
	if err := os.WriteFile(out, []byte(Markdown(resp)), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

package summarizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	bracketPattern    = regexp.MustCompile(`\[.*?\]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	speakerPattern    = regexp.MustCompile(`(Speaker [^:]+):`)
)

// Normalize strips bracketed annotations such as [inaudible] and collapses
// whitespace runs to single spaces.
func Normalize(transcript string) string {
	cleaned := bracketPattern.ReplaceAllString(transcript, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// ChunkRunes cuts text into contiguous pieces of at most size characters.
// The pieces concatenate back to text exactly.
func ChunkRunes(text string, size int) []string {
	if text == "" || size <= 0 {
		return nil
	}
	var chunks []string
	for len(text) > 0 {
		if utf8.RuneCountInString(text) <= size {
			chunks = append(chunks, text)
			break
		}
		cut := 0
		for i := 0; i < size; i++ {
			_, w := utf8.DecodeRuneInString(text[cut:])
			cut += w
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return chunks
}

// ChunkWords groups whitespace-separated words into chunks of at most
// maxLength characters, joined by single spaces. A word is never split;
// one longer than maxLength gets a chunk of its own.
func ChunkWords(text string, maxLength int) []string {
	var chunks []string
	var current []string
	currentLength := 0

	for _, word := range strings.Fields(text) {
		wordLength := utf8.RuneCountInString(word)
		if len(current) > 0 && currentLength+wordLength+1 > maxLength {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			currentLength = 0
		}
		current = append(current, word)
		if currentLength == 0 {
			currentLength = wordLength
		} else {
			currentLength += wordLength + 1
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// SplitSentences splits after '.', '!' or '?' when followed by whitespace.
// Empty input has no sentences.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if !isTerminal(runes[i]) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SpeakerStats scans text for "Speaker X:" labels. It returns the number of
// distinct labels and how often the label changed between consecutive turns.
func SpeakerStats(text string) (distinct, transitions int) {
	seen := make(map[string]bool)
	previous := ""
	for _, match := range speakerPattern.FindAllStringSubmatch(text, -1) {
		label := match[1]
		seen[label] = true
		if previous != "" && label != previous {
			transitions++
		}
		previous = label
	}
	return len(seen), transitions
}

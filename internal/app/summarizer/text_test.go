package summarizer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-summary/internal/app/testutil"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"collapses whitespace", "a \n\t b", "a b"},
		{"strips brackets", "Speaker A: hi [inaudible] there", "Speaker A: hi there"},
		{"trims", "   padded  ", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestChunkRunesReconstructs(t *testing.T) {
	text := testutil.RepeatToLength("abcdefghij ", 25000)

	chunks := ChunkRunes(text, 10000)
	require.Len(t, chunks, 3)
	assert.Equal(t, 10000, utf8.RuneCountInString(chunks[0]))
	assert.Equal(t, 10000, utf8.RuneCountInString(chunks[1]))
	assert.Equal(t, 5000, utf8.RuneCountInString(chunks[2]))
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkRunesMultibyte(t *testing.T) {
	chunks := ChunkRunes("héllo wörld", 4)
	assert.Equal(t, []string{"héll", "o wö", "rld"}, chunks)
	assert.Nil(t, ChunkRunes("", 4))
}

func TestChunkWordsNeverSplitsWords(t *testing.T) {
	text := testutil.Conversation(200)

	chunks := ChunkWords(text, 1000)
	require.Greater(t, len(chunks), 1)

	var words []string
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 1000)
		words = append(words, strings.Fields(chunk)...)
	}
	assert.Equal(t, strings.Fields(text), words)
}

func TestChunkWordsOversizedWord(t *testing.T) {
	long := strings.Repeat("x", 20)
	chunks := ChunkWords("a "+long+" b", 10)
	assert.Equal(t, []string{"a", long, "b"}, chunks)
}

func TestSplitSentences(t *testing.T) {
	assert.Nil(t, SplitSentences(""))
	assert.Nil(t, SplitSentences("   "))
	assert.Equal(t, []string{"One."}, SplitSentences("One."))
	assert.Equal(t, []string{"Hi!", "Ready?", "Yes. ok"}, SplitSentences("Hi! Ready?  Yes. ok"))
	assert.Equal(t, []string{"v1.2 shipped."}, SplitSentences("v1.2 shipped."))
}

func TestSpeakerStats(t *testing.T) {
	distinct, transitions := SpeakerStats(testutil.ThreeSentenceTranscript)
	assert.Equal(t, 2, distinct)
	assert.Equal(t, 2, transitions)

	distinct, transitions = SpeakerStats("no labels here")
	assert.Zero(t, distinct)
	assert.Zero(t, transitions)

	distinct, transitions = SpeakerStats("Speaker A: one. Speaker A: two.")
	assert.Equal(t, 1, distinct)
	assert.Zero(t, transitions)
}

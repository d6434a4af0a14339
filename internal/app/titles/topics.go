package titles

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

const maxTopics = 5

var headingPattern = regexp.MustCompile(`#+\s+`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "with": {}, "by": {}, "of": {}, "is": {}, "was": {}, "were": {},
	"be": {}, "as": {}, "that": {}, "this": {}, "key": {}, "point": {}, "points": {},
	"meeting": {}, "summary": {},
}

// defaultTopics stand in when a summary yields no usable words
var defaultTopics = []string{"Business", "Meeting", "Discussion"}

// ExtractTopics returns up to five of the most frequent content words in
// summary, most frequent first, ties broken by first occurrence.
func ExtractTopics(summary string) []string {
	text := headingPattern.ReplaceAllString(summary, "")

	words := lo.FilterMap(strings.Fields(strings.ToLower(text)), func(word string, _ int) (string, bool) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if _, stop := stopWords[word]; stop {
			return "", false
		}
		return word, utf8.RuneCountInString(word) > 3
	})
	if len(words) == 0 {
		return append([]string(nil), defaultTopics...)
	}

	counts := lo.CountValues(words)
	ranked := lo.Uniq(words)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if len(ranked) > maxTopics {
		ranked = ranked[:maxTopics]
	}
	return ranked
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

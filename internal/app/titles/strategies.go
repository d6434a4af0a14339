package titles

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/config"
)

// Count is how many titles every suggester returns
const Count = 3

const (
	systemPrompt = "You are a professional title generator for business meetings."
	userPrompt   = "Below is a summary of a meeting or call. " +
		"Generate 3 concise, professional titles for this meeting. " +
		"Each title should be less than 8 words, capture the main topic, " +
		"and be formatted for business context.\n\n" +
		"Summary:\n%s\n\nTitles:"
	maxTokens = 100

	maxTitleLength = 60
)

var listMarkup = regexp.MustCompile(`^[\d.\-*•○□\s]+`)

// Completer is a chat-completion collaborator
type Completer interface {
	Complete(ctx context.Context, apiKey, system, user string, maxTokens int) (string, error)
}

// KeyFunc picks the credential a remote strategy needs
type KeyFunc func(creds config.Credentials) string

// Remote asks a hosted language model for titles
type Remote struct {
	name      string
	completer Completer
	key       KeyFunc
}

// NewRemote creates a remote strategy
func NewRemote(name string, completer Completer, key KeyFunc) *Remote {
	return &Remote{name: name, completer: completer, key: key}
}

func (r *Remote) Info() strategy.Info {
	return strategy.Info{Name: r.name, Kind: model.KindRemote}
}

func (r *Remote) Available(creds config.Credentials) error {
	if r.key(creds) == "" {
		return apperrors.ErrMissingAPIKey
	}
	return nil
}

func (r *Remote) Run(ctx context.Context, summary string, creds config.Credentials) ([]string, error) {
	out, err := r.completer.Complete(ctx, r.key(creds), systemPrompt, fmt.Sprintf(userPrompt, summary), maxTokens)
	if err != nil {
		return nil, err
	}
	return ParseTitles(out), nil
}

// ParseTitles reads one title per line, dropping list markup and lines
// too long to be a title, then pads or truncates to Count.
func ParseTitles(content string) []string {
	titles := lo.FilterMap(strings.Split(strings.TrimSpace(content), "\n"), func(line string, _ int) (string, bool) {
		clean := strings.TrimSpace(listMarkup.ReplaceAllString(line, ""))
		return clean, clean != "" && utf8.RuneCountInString(clean) < maxTitleLength
	})
	for len(titles) < Count {
		titles = append(titles, fmt.Sprintf("Meeting Summary %d", len(titles)+1))
	}
	return titles[:Count]
}

var templates = []string{
	"{topic1} Discussion Summary",
	"{topic1} and {topic2} Planning",
	"Meeting Notes: {topic1} Review",
	"{topic1} Strategy Session",
	"Quarterly {topic1} Update",
	"{topic1}: Analysis & Next Steps",
	"{topic1} Implementation Plan",
	"{topic1} and {topic2} Collaboration",
}

// RuleBased fills randomly chosen templates with the summary's top topics.
// It is always available and never fails.
type RuleBased struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRuleBased creates the rule-based strategy. A nil rng is seeded from the clock.
func NewRuleBased(rng *rand.Rand) *RuleBased {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RuleBased{rng: rng}
}

func (r *RuleBased) Info() strategy.Info {
	return strategy.Info{Name: config.StrategyRuleBased, Kind: model.KindRule}
}

func (r *RuleBased) Available(config.Credentials) error { return nil }

func (r *RuleBased) Run(_ context.Context, summary string, _ config.Credentials) ([]string, error) {
	return r.Suggest(summary), nil
}

// Suggest returns Count template titles for summary
func (r *RuleBased) Suggest(summary string) []string {
	topics := ExtractTopics(summary)
	if len(topics) < 2 {
		topics = append(topics, "Discussion", "Planning", "Review")
	}
	replacer := strings.NewReplacer(
		"{topic1}", capitalize(topics[0]),
		"{topic2}", capitalize(topics[1]),
	)

	order := r.permutation(len(templates))
	return lo.Map(order[:Count], func(i int, _ int) string {
		return replacer.Replace(templates[i])
	})
}

func (r *RuleBased) permutation(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Perm(n)
}

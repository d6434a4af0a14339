package titles

import (
	"context"

	"call-summary/internal/app/api/gemini"
	"call-summary/internal/app/api/openai/chat"
	"call-summary/internal/app/model"
	"call-summary/internal/app/strategy"
	"call-summary/internal/config"
)

// Suggester proposes exactly Count titles for a summary
type Suggester struct {
	chain *strategy.Chain[string, []string]
	rules *RuleBased
}

// New creates a Suggester. rules backs the chain when every strategy
// fails; nil uses a clock-seeded RuleBased.
func New(strategies []strategy.Strategy[string, []string], rules *RuleBased, opts strategy.Options) *Suggester {
	if rules == nil {
		rules = NewRuleBased(nil)
	}
	return &Suggester{
		chain: strategy.NewChain(model.StageTitle, strategies, func(error) []string { return nil }, opts),
		rules: rules,
	}
}

// SuggestTitles runs the strategy chain
func (s *Suggester) SuggestTitles(ctx context.Context, summary string, creds config.Credentials) ([]string, model.Outcome) {
	titles, outcome, _ := s.chain.Execute(ctx, summary, creds)
	if outcome.Strategy == strategy.FallbackName {
		titles = s.rules.Suggest(summary)
	}
	return titles, outcome
}

// Strategies lists the configured order
func (s *Suggester) Strategies() []string {
	return s.chain.Names()
}

// NewRegistry registers every title strategy known to the service. rules
// is shared with the Suggester so one RNG drives all rule-based titles.
func NewRegistry(cfg *config.Config, rules *RuleBased) *strategy.Registry[string, []string] {
	if rules == nil {
		rules = NewRuleBased(nil)
	}
	reg := strategy.NewRegistry[string, []string]()

	_ = reg.Register(config.StrategyOpenAI, func() (strategy.Strategy[string, []string], error) {
		completer := chat.NewCompleter(cfg.OpenAI.BaseURL, cfg.OpenAI.ChatModel, cfg.OpenAI.Timeout)
		return NewRemote(config.StrategyOpenAI, completer, func(c config.Credentials) string { return c.OpenAI }), nil
	})
	_ = reg.Register(config.StrategyGemini, func() (strategy.Strategy[string, []string], error) {
		completer := gemini.NewCompleter(cfg.Gemini.Model, "", cfg.Gemini.Timeout)
		return NewRemote(config.StrategyGemini, completer, func(c config.Credentials) string { return c.Gemini }), nil
	})
	_ = reg.Register(config.StrategyRuleBased, func() (strategy.Strategy[string, []string], error) {
		return rules, nil
	})

	return reg
}

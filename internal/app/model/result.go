package model

import "time"

// StrategyKind classifies how a strategy produces its output
type StrategyKind string

const (
	KindRemote StrategyKind = "remote"
	KindLocal  StrategyKind = "local"
	KindRule   StrategyKind = "rule"
)

// Stage names used in logs and metrics
const (
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
	StageTitle      = "title"
)

// Outcome records which strategy produced a stage's output.
type Outcome struct {
	Stage    string        `json:"stage"`
	Strategy string        `json:"strategy"`
	Kind     StrategyKind  `json:"kind"`
	Degraded bool          `json:"degraded"`
	Attempts int           `json:"attempts"`
	Duration time.Duration `json:"duration"`
}

// Result is everything the pipeline returns for one recording
type Result struct {
	Summary    string
	Titles     []string
	Transcript string
	Outcomes   []Outcome
}

// Degraded reports whether any stage fell back past its first strategy
func (r *Result) Degraded() bool {
	for _, o := range r.Outcomes {
		if o.Degraded {
			return true
		}
	}
	return false
}

// Strategies lists the winning strategy of each stage, in stage order
func (r *Result) Strategies() []string {
	names := make([]string, len(r.Outcomes))
	for i, o := range r.Outcomes {
		names[i] = o.Stage + "=" + o.Strategy
	}
	return names
}

package strategy

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records strategy attempts per stage. A nil *Metrics is a no-op.
type Metrics struct {
	attempts *prometheus.CounterVec
	degraded *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Attempt results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// NewMetrics registers the strategy collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "callsum",
			Name:      "strategy_attempts_total",
			Help:      "Strategy invocations by stage and result.",
		}, []string{"stage", "strategy", "result"}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "callsum",
			Name:      "stage_degraded_total",
			Help:      "Stage executions served by a strategy other than the first configured one.",
		}, []string{"stage"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "callsum",
			Name:      "strategy_duration_seconds",
			Help:      "Time spent inside a strategy run.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"stage", "strategy"}),
	}
	reg.MustRegister(m.attempts, m.degraded, m.duration)
	return m
}

func (m *Metrics) record(stage, strategy, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(stage, strategy, result).Inc()
	if result != ResultSkipped {
		m.duration.WithLabelValues(stage, strategy).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) recordDegraded(stage string) {
	if m == nil {
		return
	}
	m.degraded.WithLabelValues(stage).Inc()
}

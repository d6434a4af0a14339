package strategy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
	"call-summary/internal/config"
)

// FallbackName identifies outputs produced by a chain's terminal fallback
const FallbackName = "fallback"

// Options tune how a chain retries and reports
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
	Metrics    *Metrics
	Logger     *zap.Logger
}

// Chain tries its strategies in order and returns the first success.
type Chain[In, Out any] struct {
	stage      string
	strategies []Strategy[In, Out]
	fallback   func(err error) Out
	opts       Options
}

// NewChain creates a chain for stage. fallback may be nil; when set, it
// turns an exhausted chain into a value instead of an error.
func NewChain[In, Out any](stage string, strategies []Strategy[In, Out], fallback func(err error) Out, opts Options) *Chain[In, Out] {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Chain[In, Out]{
		stage:      stage,
		strategies: strategies,
		fallback:   fallback,
		opts:       opts,
	}
}

// Stage returns the stage name
func (c *Chain[In, Out]) Stage() string { return c.stage }

// Names lists the configured strategy names in order
func (c *Chain[In, Out]) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Info().Name
	}
	return names
}

// Execute runs the chain. The Outcome names the winning strategy and is
// Degraded when that strategy was not first in the configured order.
func (c *Chain[In, Out]) Execute(ctx context.Context, in In, creds config.Credentials) (Out, model.Outcome, error) {
	start := time.Now()
	outcome := model.Outcome{Stage: c.stage}
	var errs []error

	for i, s := range c.strategies {
		info := s.Info()

		if err := s.Available(creds); err != nil {
			c.opts.Metrics.record(c.stage, info.Name, ResultSkipped, 0)
			c.opts.Logger.Debug("strategy skipped",
				zap.String("stage", c.stage),
				zap.String("strategy", info.Name),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w: %w", info.Name, apperrors.ErrStrategySkipped, err))
			continue
		}

		attemptStart := time.Now()
		out, attempts, err := c.try(ctx, s, in, creds)
		outcome.Attempts += attempts

		if err == nil {
			c.opts.Metrics.record(c.stage, info.Name, ResultSuccess, time.Since(attemptStart))
			outcome.Strategy = info.Name
			outcome.Kind = info.Kind
			outcome.Degraded = i > 0
			outcome.Duration = time.Since(start)
			if outcome.Degraded {
				c.opts.Metrics.recordDegraded(c.stage)
			}
			c.opts.Logger.Info("stage completed",
				zap.String("stage", c.stage),
				zap.String("strategy", info.Name),
				zap.Bool("degraded", outcome.Degraded),
				zap.Duration("duration", outcome.Duration))
			return out, outcome, nil
		}

		c.opts.Metrics.record(c.stage, info.Name, ResultFailure, time.Since(attemptStart))
		c.opts.Logger.Warn("strategy failed",
			zap.String("stage", c.stage),
			zap.String("strategy", info.Name),
			zap.Int("attempts", attempts),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", info.Name, err))

		if ctx.Err() != nil {
			break
		}
	}

	var chainErr error
	if len(errs) == 0 {
		chainErr = fmt.Errorf("no %s strategies configured: %w", c.stage, apperrors.ErrChainExhausted)
	} else {
		chainErr = fmt.Errorf("%w: %w", apperrors.ErrChainExhausted, errors.Join(errs...))
	}
	outcome.Duration = time.Since(start)

	if c.fallback != nil {
		outcome.Strategy = FallbackName
		outcome.Kind = model.KindRule
		outcome.Degraded = true
		c.opts.Metrics.recordDegraded(c.stage)
		c.opts.Logger.Error("all strategies failed, using fallback",
			zap.String("stage", c.stage),
			zap.Error(chainErr))
		return c.fallback(chainErr), outcome, nil
	}

	var zero Out
	return zero, outcome, chainErr
}

// try runs a single strategy with retry logic
func (c *Chain[In, Out]) try(ctx context.Context, s Strategy[In, Out], in In, creds config.Credentials) (Out, int, error) {
	var lastErr error
	var zero Out
	attempts := 0

	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			// Wait before retry
			select {
			case <-ctx.Done():
				return zero, attempts, ctx.Err()
			case <-time.After(c.opts.RetryDelay):
			}
		}

		attempts++
		out, err := s.Run(ctx, in, creds)
		if err == nil {
			return out, attempts, nil
		}
		lastErr = err

		if !IsRetryable(err) || ctx.Err() != nil {
			break
		}
	}

	return zero, attempts, lastErr
}

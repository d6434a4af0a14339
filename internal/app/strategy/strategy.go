package strategy

import (
	"context"

	"call-summary/internal/app/model"
	"call-summary/internal/config"
)

// Info describes a strategy
type Info struct {
	Name string
	Kind model.StrategyKind
}

// Strategy is one way of producing a stage's output. Available is checked
// before Run; an error from Available means the strategy is skipped, not failed.
type Strategy[In, Out any] interface {
	Info() Info
	Available(creds config.Credentials) error
	Run(ctx context.Context, in In, creds config.Credentials) (Out, error)
}

// Func adapts plain functions to the Strategy interface
type Func[In, Out any] struct {
	Meta        Info
	AvailableFn func(creds config.Credentials) error
	RunFn       func(ctx context.Context, in In, creds config.Credentials) (Out, error)
}

func (f Func[In, Out]) Info() Info { return f.Meta }

func (f Func[In, Out]) Available(creds config.Credentials) error {
	if f.AvailableFn == nil {
		return nil
	}
	return f.AvailableFn(creds)
}

func (f Func[In, Out]) Run(ctx context.Context, in In, creds config.Credentials) (Out, error) {
	return f.RunFn(ctx, in, creds)
}

package strategy

import (
	"fmt"
	"sort"
	"sync"

	apperrors "call-summary/internal/app/errors"
)

// Builder constructs a strategy on demand
type Builder[In, Out any] func() (Strategy[In, Out], error)

// Registry maps strategy names to builders so chains can be assembled
// from configured orders.
type Registry[In, Out any] struct {
	mu       sync.RWMutex
	builders map[string]Builder[In, Out]
}

// NewRegistry creates an empty registry
func NewRegistry[In, Out any]() *Registry[In, Out] {
	return &Registry[In, Out]{builders: make(map[string]Builder[In, Out])}
}

// Register adds a builder under name
func (r *Registry[In, Out]) Register(name string, builder Builder[In, Out]) error {
	if name == "" {
		return fmt.Errorf("strategy name cannot be empty")
	}
	if builder == nil {
		return fmt.Errorf("strategy builder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("strategy '%s' already registered", name)
	}
	r.builders[name] = builder
	return nil
}

// Build instantiates the strategies named in order, preserving it
func (r *Registry[In, Out]) Build(order []string) ([]Strategy[In, Out], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategies := make([]Strategy[In, Out], 0, len(order))
	for _, name := range order {
		builder, ok := r.builders[name]
		if !ok {
			return nil, apperrors.Wrapf(apperrors.ErrUnknownStrategy, "strategy '%s'", name)
		}
		s, err := builder()
		if err != nil {
			return nil, fmt.Errorf("failed to build strategy '%s': %w", name, err)
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}

// Names returns the registered names in sorted order
func (r *Registry[In, Out]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package watcher

import "context"

// EventHandler processes one newly created recording
type EventHandler func(ctx context.Context, path string) error

// Watcher monitors a directory for new recordings
type Watcher interface {
	// Start blocks until ctx is cancelled, then waits for in-flight handlers
	Start(ctx context.Context) error
	Stop() error
}

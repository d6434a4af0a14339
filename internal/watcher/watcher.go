package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"call-summary/internal/app/model"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        *zap.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start dispatches every created audio file to the handler
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info("File watcher started",
		zap.String("dir", w.inputDir),
		zap.Int("max_concurrent", w.maxConcurrent))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Waiting for ongoing processing to complete")
			w.wg.Wait()
			w.logger.Info("File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !IsAudioFile(event.Name) {
				w.logger.Debug("Ignoring non-audio file", zap.String("path", event.Name))
				continue
			}

			w.logger.Info("New recording detected", zap.String("path", event.Name))

			// let the writer finish before uploading
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				continue
			}

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, path); err != nil {
						w.logger.Error("Failed to process recording", zap.String("path", path), zap.Error(err))
					}
				}(event.Name)
			case <-ctx.Done():
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// IsAudioFile reports whether path has an extension the server accepts
func IsAudioFile(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return model.IsValidAudioFormat(ext)
}

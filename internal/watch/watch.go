// Package watch re-runs a function when a file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// File calls fn each time path is written or recreated, once events have been
// quiet for debounce. It watches the parent directory so editors that replace
// the file on save are seen. File blocks until ctx is done and then returns
// ctx.Err(). Errors from fn are logged, not returned.
func File(ctx context.Context, path string, debounce time.Duration, logger *zap.Logger, fn func() error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	logger.Info("watching for changes", zap.String("path", target), zap.Duration("debounce", debounce))

	// fire is nil until a change arms the timer.
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return ctx.Err()
			}
			if filepath.Clean(event.Name) != target || (!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return ctx.Err()
			}
			logger.Error("file watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := fn(); err != nil {
				logger.Error("regeneration failed", zap.String("path", target), zap.Error(err))
				continue
			}
			logger.Info("regenerated", zap.String("path", target))
		}
	}
}

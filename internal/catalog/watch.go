package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"schemegrip/internal/debounce"
	"schemegrip/internal/eventbus"
)

// watchQuiet collapses the burst of events an editor save produces into one change
const watchQuiet = 200 * time.Millisecond

// Watch publishes a CatalogChangedEvent whenever the file at path changes.
// The parent directory is watched so atomic "write temp + rename" saves are seen.
// It blocks until ctx is done.
func Watch(ctx context.Context, bus eventbus.EventBus, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	changes := debounce.New[string](watchQuiet)
	defer changes.Stop()

	zap.L().Info("catalog: watching for changes", zap.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				changes.Push(abs)
			}

		case changed := <-changes.C():
			zap.L().Info("catalog: file changed", zap.String("path", changed))
			bus.Publish(eventbus.CatalogChangedEvent{Source: changed})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			zap.L().Warn("catalog: watcher error", zap.Error(err))
		}
	}
}

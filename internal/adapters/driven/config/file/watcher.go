package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/clipfold-labs/clipfold-cli/internal/logger"
)

// Watch reloads the store when the config file changes on disk and sends a
// notification on the returned channel. The watcher runs until ctx is
// cancelled. Intended for long-running fronts (serve, tui) that should pick
// up edits made with a text editor or another clipfold process.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace the file on save,
	// which would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(changes)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				if err := s.Load(); err != nil {
					logger.Warn("config: reload failed: %v", err)
					continue
				}
				logger.Debug("config: reloaded %s", s.filePath)

				// Coalesce bursts; a pending notification is enough.
				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config: watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// Watch reloads the store whenever config.toml changes on disk and then
// calls onChange. The directory is watched rather than the file so that
// editors which replace the file on save are handled.
//
// Setup errors are returned; the watch itself runs in a goroutine until
// ctx is cancelled.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(s.filePath), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !s.isConfigEvent(event) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("reloading %s: %v", s.filePath, err)
					continue
				}
				logger.Debug("config reloaded after %s", event.Op)
				onChange()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher: %v", err)
			}
		}
	}()

	return nil
}

// isConfigEvent reports whether event may have changed the config file contents.
func (s *ConfigStore) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.filePath) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

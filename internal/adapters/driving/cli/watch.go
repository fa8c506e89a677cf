package cli

import (
	"context"

	"github.com/clipfold-labs/clipfold-cli/internal/logger"
)

// ConfigWatcher notifies about external edits to the config file. The file
// config store implements it; the composition root injects the concrete
// store so long-running commands pick up changes.
type ConfigWatcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

var configWatcher ConfigWatcher

// SetConfigWatcher wires the config watcher used by serve and tui.
func SetConfigWatcher(w ConfigWatcher) {
	configWatcher = w
}

// watchConfig starts watching the config file and re-reads settings whenever
// it changes on disk. Changes to the LLM provider or capture options take
// effect on the next submission; the refresh here keeps the settings service
// serving current values. No-op when no watcher is wired.
func watchConfig(ctx context.Context) {
	if configWatcher == nil || settingsService == nil {
		return
	}

	changes, err := configWatcher.Watch(ctx)
	if err != nil {
		logger.Warn("config: watch unavailable: %v", err)
		return
	}

	go func() {
		for range changes {
			settings, err := settingsService.Get()
			if err != nil {
				logger.Warn("config: reload failed: %v", err)
				continue
			}
			logger.Info("config: settings reloaded (provider=%s, addr=%s)",
				settings.LLM.Provider, settings.Server.Addr)
		}
	}()
}

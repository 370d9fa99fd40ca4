package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"mocap-zone-configurator/internal/logging"
)

// DebounceInterval collapses bursts of editor writes into one reload.
const DebounceInterval = 150 * time.Millisecond

// Watch re-loads path whenever it is written, created or renamed into place
// and passes the result to fn. It blocks until ctx is done. The containing
// directory is watched because editors often replace the file.
func Watch(ctx context.Context, path string, logger *zap.Logger, fn func(Config, error)) error {
	logger = logging.OrNop(logger)
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching config", logging.Path(abs))

	// Armed by the first matching event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("config change detected", logging.Path(ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(DebounceInterval)
		case <-timer.C:
			cfg, err := Load(abs)
			if err == nil {
				logger.Info("config reloaded", logging.Path(abs))
			} else {
				logger.Warn("config reload failed", zap.Error(err))
			}
			fn(cfg, err)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

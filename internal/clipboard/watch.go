package clipboard

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reports the name of every item that lands in the current slot until
// ctx is done, at which point the returned channel is closed. The watch is
// registered before Watch returns, so clips made afterwards are never missed.
//
// fsnotify observes the real filesystem; Watch is only meaningful when the
// clipboard runs on afero.OsFs.
func (c *Clipboard) Watch(ctx context.Context) (<-chan string, error) {
	if err := c.makeDirs(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(c.config.CurrentDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", c.config.CurrentDir, err)
	}
	c.logger.Debug("Watching clipboard", zap.String("dir", c.config.CurrentDir))

	names := make(chan string)
	go func() {
		defer close(names)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Rotation shows up as Rename/Remove; only arrivals matter.
				if !event.Has(fsnotify.Create) {
					continue
				}
				select {
				case names <- filepath.Base(event.Name):
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.logger.Warn("Watcher error", zap.Error(err))
			}
		}
	}()

	return names, nil
}

package knobs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTheme loads the theme at path and delivers it, then again every time
// the file is written or replaced, until ctx is done. Files that fail to
// parse are logged and skipped. The channel is closed when watching stops.
//
// The Gui is single-threaded: receive from the channel on the UI goroutine
// and call SetTheme there.
func WatchTheme(ctx context.Context, path string, logger *slog.Logger) (<-chan Theme, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path = filepath.Clean(path)
	initial, err := LoadThemeFile(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}
	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch theme: %w", err)
	}

	themes := make(chan Theme, 1)
	themes <- initial

	go func() {
		defer close(themes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				theme, err := LoadThemeFile(path)
				if err != nil {
					logger.Error("reload theme", slog.String("path", path), slog.Any("error", err))
					continue
				}
				logger.Info("theme reloaded", slog.String("path", path))
				select {
				case themes <- theme:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("watch theme", slog.Any("error", err))
			}
		}
	}()

	return themes, nil
}

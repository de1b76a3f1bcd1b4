package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/geoconv/geoconv/internal/debug"
)

// WatchConfig reloads the configuration whenever the config file changes.
// It blocks until ctx is done.
func (a *App) WatchConfig(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to start fs watcher: %w", err)
	}
	defer fsWatcher.Close()

	// Watch the directory, as editors tend to replace the file on save.
	path := filepath.Clean(a.options.ConfigPath)
	dir := filepath.Dir(path)
	debug.Printf("Adding '%s' to fs watcher", dir)
	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("unable to add path '%s' to fs watcher: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != path || e.Op == fsnotify.Chmod || e.Op == fsnotify.Remove {
				continue
			}
			// Make sure we don't reload many times over a short period.
			drainUntilSilence(fsWatcher, 100*time.Millisecond)
			if err := a.Reload(); err != nil {
				log.Printf("Unable to reload config: %v", err)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Println(err)
		}
	}
}

// drainUntilSilence reads from w.Events and blocks until the channel has been silent for silenceDur.
func drainUntilSilence(w *fsnotify.Watcher, silenceDur time.Duration) {
	timer := time.NewTimer(silenceDur)
	defer timer.Stop()
	for {
		select {
		case <-w.Events:
			timer.Reset(silenceDur)
		case <-timer.C:
			return
		}
	}
}

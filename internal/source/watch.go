package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/abhisek/eduvision/internal/logger"
)

// ReloadFunc receives the freshly loaded text, or the error from loading it.
type ReloadFunc func(text string, err error)

// Watcher reloads a study material file whenever it changes on disk.
type Watcher struct {
	path    string
	onLoad  ReloadFunc
	log     *logger.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher watches path. The parent directory is watched rather than the
// file itself so that editors which save by renaming are still noticed.
func NewWatcher(path string, onLoad ReloadFunc, log *logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &Watcher{path: abs, onLoad: onLoad, log: log, watcher: fw}, nil
}

// Run delivers reloads until ctx is cancelled or the watcher is stopped.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info("watching study material", "path", w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.log.Debug("study material changed", "path", w.path, "op", event.Op.String())
			w.onLoad(Load(w.path))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "path", w.path, "error", err)
		}
	}
}

// Stop closes the underlying watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

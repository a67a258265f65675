// Package watcher reports changes under a template directory using
// github.com/fsnotify/fsnotify. Editor swap and backup files are ignored and
// bursts of events on the same file are debounced.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 50 * time.Millisecond

// Suffixes written by editors that never hold template content.
var ignoreSuffixes = []string{".swp", ".swx", ".tmp", "~", ".DS_Store"}

// Watcher watches a directory tree and invokes a callback on change.
type Watcher struct {
	fw      *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// New creates a new file system watcher.
func New(logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:     fw,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Watch starts monitoring dir recursively.
// onChange is called with the path of each changed file.
func (w *Watcher) Watch(dir string, onChange func(path string)) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Trailing debounce: onChange fires once a file has been quiet for
	// debounceInterval, so a truncate followed by a write reports once.
	pending := make(map[string]*time.Timer)

	go func() {
		defer func() {
			for _, timer := range pending {
				timer.Stop()
			}
		}()

		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if err := w.fw.Add(path); err != nil {
							w.logger.Warn("Failed to watch new directory",
								slog.String("path", path),
								slog.String("error", err.Error()),
							)
						}
					}
				}

				if shouldIgnore(path) {
					continue
				}

				if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
					continue
				}

				w.logger.Debug("Template change detected",
					slog.String("path", path),
					slog.String("op", event.Op.String()),
				)

				if timer, ok := pending[path]; ok {
					timer.Reset(debounceInterval)
					continue
				}
				pending[path] = time.AfterFunc(debounceInterval, func() {
					onChange(path)
				})

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("File watcher error", slog.String("error", err.Error()))

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".#") {
		return true
	}
	for _, suffix := range ignoreSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

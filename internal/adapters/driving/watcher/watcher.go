// Package watcher ingests documents from a watched directory as they are
// created or modified. It implements a driving adapter: filesystem events
// drive the core ingestion service.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
	"github.com/kvault-labs/kvault-cli/internal/logger"
)

// DefaultDebounce is how long a file must stop changing before it is
// ingested. Editors and downloads produce bursts of write events; one
// ingest per settled file is wanted, not one per event.
const DefaultDebounce = 2 * time.Second

// ErrMissingDir is returned when no directory is configured.
var ErrMissingDir = errors.New("watcher: directory is required")

// ErrMissingIngestor is returned when no ingestor is configured.
var ErrMissingIngestor = errors.New("watcher: ingestor is required")

// Config configures a Watcher.
type Config struct {
	// Dir is the directory to watch. Subdirectories are not watched.
	Dir string

	// Ingestor receives files once they settle.
	Ingestor driving.Ingestor

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
}

// Watcher feeds supported files from one directory to the ingestor.
// Hidden files, directories and unsupported types are skipped.
type Watcher struct {
	dir      string
	ingestor driving.Ingestor
	debounce time.Duration
	fs       *fsnotify.Watcher

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher for cfg.Dir. The directory must exist.
func New(cfg Config) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, ErrMissingDir
	}
	if cfg.Ingestor == nil {
		return nil, ErrMissingIngestor
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(cfg.Dir); err != nil {
		fs.Close() //nolint:errcheck // already failing, nothing to report
		return nil, fmt.Errorf("watch %s: %w", cfg.Dir, err)
	}

	return &Watcher{
		dir:      cfg.Dir,
		ingestor: cfg.Ingestor,
		debounce: debounce,
		fs:       fs,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run processes filesystem events until ctx is cancelled. Cancellation
// returns nil; watch failures are returned as errors.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.dir, err)
		}
	}
}

// Close stops watching and cancels pending debounce timers.
func (w *Watcher) Close() error {
	w.stopTimers()
	return w.fs.Close()
}

// handleEvent schedules ingestion for created or modified files.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if isHidden(path) {
		return
	}
	if !domain.IsSupportedFile(path) {
		logger.Debug("watcher: unsupported file type, skipping %s", path)
		return
	}

	w.schedule(ctx, path)
}

// schedule (re)arms the debounce timer for path. Each new event while the
// file is still changing pushes the ingest back by the full debounce.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.forget(path)
		w.ingest(ctx, path)
	})
}

// forget drops the timer entry for path.
func (w *Watcher) forget(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, path)
}

// stopTimers cancels all pending debounce timers.
func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}

// ingest feeds one settled file to the ingestor. Failures are logged,
// never fatal: the watch loop must survive a bad file.
func (w *Watcher) ingest(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	// The file may have been removed, or may be a directory with a
	// document-like name, between the event and the settle.
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		logger.Debug("watcher: %s gone or not a file, skipping", path)
		return
	}

	report, err := w.ingestor.AddDocuments(ctx, []string{path})
	if err != nil {
		logger.Warn("watch ingest %s: %v", path, err)
		return
	}
	if report.Failed > 0 {
		logger.Warn("watch ingest %s: %s", path, strings.Join(report.Errors, "; "))
		return
	}
	logger.Info("ingested %s", path)
}

// isHidden reports whether any element of path starts with a dot.
// The relative markers "." and ".." do not count as hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

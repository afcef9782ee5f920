// Package watch triggers a callback when any of a set of files changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period used when none is given.
const DefaultDebounce = 200 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for watch events and callback failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// Watcher coalesces change events on a set of files into single callbacks.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	debounce time.Duration
	onChange func(context.Context) error
	logger   zerolog.Logger
	ready    chan struct{}
}

// New watches paths, calling onChange once the files have been quiet for
// debounce after a change.
func New(paths []string, debounce time.Duration, onChange func(context.Context) error, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths to watch")
	}
	if onChange == nil {
		return nil, errors.New("change callback is required")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		files:    make(map[string]bool, len(paths)),
		debounce: debounce,
		onChange: onChange,
		logger:   zerolog.Nop(),
		ready:    make(chan struct{}),
	}
	seenDirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		w.files[abs] = true
		// Editors often replace files instead of writing them, so the
		// directory is watched rather than the file.
		dir := filepath.Dir(abs)
		if !seenDirs[dir] {
			seenDirs[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Ready is closed once Run has registered its watches.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run blocks until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.Debug().Str("dir", dir).Msg("watching directory")
	}
	close(w.ready)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			timerCh = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")

		case <-timerCh:
			timerCh = nil
			if err := w.onChange(ctx); err != nil {
				w.logger.Error().Err(err).Msg("change handler failed")
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}

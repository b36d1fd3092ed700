// Package watch triggers a callback when the PHP source file changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher watches a single file. The parent directory is watched so that
// editors replacing the file through a rename are noticed too.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func()
	log      *zap.Logger

	timerMu sync.Mutex
	timer   *time.Timer
}

// NewFileWatcher creates a watcher calling onChange once per burst of writes
// to path, after debounce of silence.
func NewFileWatcher(path string, debounce time.Duration, onChange func(), log *zap.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	if log == nil {
		log = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "unable to watch %s", filepath.Dir(abs))
	}

	return &FileWatcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		log:      log,
	}, nil
}

// Run processes events until ctx is done. The watcher is closed on return.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	defer fw.stopTimer()

	fw.log.Info("Watcher started", zap.String("path", fw.path))
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			// Ignore chmod events (too noisy)
			if event.Op == fsnotify.Chmod {
				continue
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			fw.log.Debug("Source changed", zap.String("op", event.Op.String()))
			fw.trigger()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Error("Watcher error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}

func (fw *FileWatcher) trigger() {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.onChange)
}

func (fw *FileWatcher) stopTimer() {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
}

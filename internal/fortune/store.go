package fortune

import (
	"context"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/Iron-Ham/cookieshell/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors emit for one save.
const reloadDebounce = 100 * time.Millisecond

// Store serves the current fortune list. It is safe for concurrent use.
type Store struct {
	path    string
	current atomic.Pointer[[]string]
	logger  *logging.Logger
}

// NewStore returns a store that always serves list.
func NewStore(list []string) *Store {
	s := &Store{logger: logging.NopLogger()}
	s.set(list)
	return s
}

// OpenStore loads path into a new store. An empty path yields the
// built-in Default list.
func OpenStore(path string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if path == "" {
		s := NewStore(Default)
		s.logger = logger
		return s, nil
	}

	list, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, logger: logger.With("fortune_file", path)}
	s.set(list)
	return s, nil
}

// List returns the current snapshot. Callers must not modify it.
func (s *Store) List() []string {
	return *s.current.Load()
}

// Path returns the backing file, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) set(list []string) {
	cp := slices.Clone(list)
	s.current.Store(&cp)
}

// Reload re-reads the backing file. On error the current list is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	list, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.set(list)
	s.logger.Info("fortunes reloaded", "count", len(list))
	return nil
}

// Watch reloads the backing file whenever it is written or recreated,
// until ctx is done. It returns immediately for an in-memory store.
//
// The parent directory is watched rather than the file itself so that
// editors that save by rename keep triggering reloads.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	debounce := time.NewTimer(reloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(reloadDebounce)

		case <-debounce.C:
			if err := s.Reload(); err != nil {
				s.logger.Warn("fortune reload failed, keeping previous list", "error", err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("fortune watcher error", "error", err.Error())
		}
	}
}

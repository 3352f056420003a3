package store

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// startWatcher evicts cache entries when record files disappear from disk
// behind the store's back (operator cleanup, external tooling). Writes made
// through Save keep their cache entry; only removals are observed here.
func (s *implStore) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer watcher.Close()

		ctx := context.Background()
		for {
			select {
			case <-s.done:
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				name := filepath.Base(event.Name)
				if !strings.HasSuffix(name, recordExt) {
					continue
				}
				id := strings.TrimSuffix(name, recordExt)

				s.cacheMu.Lock()
				_, cached := s.cache[id]
				delete(s.cache, id)
				s.cacheMu.Unlock()

				if cached {
					s.logger.Debug(ctx, "evicted record %s after external removal", id)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn(ctx, "records watcher: %v", err)
			}
		}
	}()

	return nil
}

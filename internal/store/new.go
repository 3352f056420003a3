package store

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

type implStore struct {
	dir    string
	logger logger.Logger

	cache   map[string]*transcript.Record
	cacheMu sync.RWMutex

	idLocks sync.Map // id -> *sync.Mutex

	done chan struct{}
	wg   sync.WaitGroup
}

// Options configures the record store.
type Options struct {
	// Dir is the records directory. Required.
	Dir string
	// TTL is the record lifetime enforced by the background sweeper.
	// Zero disables the sweeper; on-demand Sweep still works.
	TTL time.Duration
	// SweepInterval is how often the background sweeper runs.
	SweepInterval time.Duration
	// Watch enables eviction of cache entries when record files are
	// removed on disk by something other than this process.
	Watch bool
}

// New creates a Store over opts.Dir, creating the directory if needed.
func New(opts Options, log logger.Logger) (Store, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("store: records directory is required")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create records dir: %w", err)
	}

	s := &implStore{
		dir:    opts.Dir,
		logger: log,
		cache:  make(map[string]*transcript.Record),
		done:   make(chan struct{}),
	}

	if opts.Watch {
		if err := s.startWatcher(); err != nil {
			return nil, fmt.Errorf("watch records dir: %w", err)
		}
	}
	if opts.TTL > 0 && opts.SweepInterval > 0 {
		s.startSweeper(opts.TTL, opts.SweepInterval)
	}

	return s, nil
}

// Close stops the sweeper and watcher goroutines.
func (s *implStore) Close() error {
	close(s.done)
	s.wg.Wait()
	return nil
}

// idLock returns the mutex serializing operations on one record id.
func (s *implStore) idLock(id string) *sync.Mutex {
	value, _ := s.idLocks.LoadOrStore(id, &sync.Mutex{})
	return value.(*sync.Mutex)
}

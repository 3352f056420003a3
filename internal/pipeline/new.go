package pipeline

import (
	"sync"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/captions"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
)

type implPipeline struct {
	provider captions.Provider
	store    store.Store
	logger   logger.Logger

	sem     *semaphore
	timeout time.Duration
	wg      sync.WaitGroup
}

// Options configures the pipeline.
type Options struct {
	// MaxConcurrent bounds simultaneous background extractions.
	MaxConcurrent int
	// Timeout bounds one extraction end to end.
	Timeout time.Duration
}

// New creates a Pipeline backed by the given captions provider and store.
func New(opts Options, provider captions.Provider, st store.Store, log logger.Logger) Pipeline {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &implPipeline{
		provider: provider,
		store:    st,
		logger:   log,
		sem:      newSemaphore(opts.MaxConcurrent),
		timeout:  opts.Timeout,
	}
}

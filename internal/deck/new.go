package deck

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/generate"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
)

type implService struct {
	dir       string
	limits    paginate.Limits
	policy    paginate.Policy
	generator generate.Generator
	sink      Sink
	logger    logger.Logger
}

// Options configures the deck service.
type Options struct {
	// Dir is the directory deck documents are written into.
	Dir string
	// Limits bounds each slide's text.
	Limits paginate.Limits
	// Policy decides what happens to title-only sections.
	Policy paginate.Policy
}

// New creates a deck Service writing documents through sink. A nil sink
// defaults to the docx writer.
func New(opts Options, gen generate.Generator, sink Sink, log logger.Logger) Service {
	if sink == nil {
		sink = NewDocxSink()
	}
	return &implService{
		dir:       opts.Dir,
		limits:    opts.Limits,
		policy:    opts.Policy,
		generator: gen,
		sink:      sink,
		logger:    log,
	}
}

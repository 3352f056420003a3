package generate

import (
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implGenerator struct {
	apiKeys   []string
	model     string
	maxTokens int
	logger    logger.Logger

	// keyMu guards currentKey; callGemini runs concurrently under the
	// HTTP handlers.
	keyMu      sync.Mutex
	currentKey int
}

// Options configures the Gemini-backed generator.
type Options struct {
	APIKeys   []string
	Model     string
	MaxTokens int
}

// New creates a Generator that rotates through the supplied Gemini API keys
// when one is rate limited.
func New(opts Options, log logger.Logger) (Generator, error) {
	if len(opts.APIKeys) == 0 {
		return nil, errs.New(errs.KindGeneration, "no API keys configured")
	}
	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implGenerator{
		apiKeys:   opts.APIKeys,
		model:     model,
		maxTokens: opts.MaxTokens,
		logger:    log,
	}, nil
}

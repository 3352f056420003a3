package captions

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// Options configures the caption provider client.
type Options struct {
	// BaseURL overrides the provider endpoint, mainly for tests.
	BaseURL string
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// New creates a Provider backed by the YouTube InnerTube API.
func New(opts Options, log logger.Logger) Provider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = "https://www.youtube.com"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &implClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP routes onto a gin engine.
func NewRouter(opts Options) *gin.Engine {
	h := &handler{
		pipeline:  opts.Pipeline,
		store:     opts.Store,
		decks:     opts.Decks,
		generator: opts.Generator,
		logger:    opts.Logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/transcripts", h.createTranscript)
		v1.GET("/transcripts", h.listTranscripts)
		v1.GET("/transcripts/:id", h.getTranscript)
		v1.GET("/transcripts/:id/status", h.getStatus)
		v1.POST("/transcripts/:id/summary", h.createSummary)
		v1.DELETE("/transcripts/:id", h.deleteTranscript)

		v1.POST("/decks", h.createDeck)
	}

	return r
}

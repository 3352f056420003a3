// Package api exposes the HTTP surface: transcript CRUD, summaries and
// deck generation.
package api

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/deck"
	"github.com/nguyentantai21042004/transcript-flow/internal/generate"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
)

type handler struct {
	pipeline  pipeline.Pipeline
	store     store.Store
	decks     deck.Service
	generator generate.Generator
	logger    logger.Logger
}

// Options carries the services the HTTP layer dispatches to.
type Options struct {
	Pipeline  pipeline.Pipeline
	Store     store.Store
	Decks     deck.Service
	Generator generate.Generator
	Logger    logger.Logger
}

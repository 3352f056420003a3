package deck

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Service assembles presentation decks from transcripts and structured input.
type Service interface {
	// FromRecord outlines a completed transcript with the generator, splits
	// the outline into sections, and writes a deck document. Returns the
	// written file path.
	FromRecord(ctx context.Context, rec *transcript.Record) (string, error)
	// FromPayload writes a deck document from pre-structured slide input,
	// bypassing the generator.
	FromPayload(ctx context.Context, id string, payload *paginate.DeckPayload) (string, error)
}

// Sink persists an assembled deck somewhere.
type Sink interface {
	Write(path, title string, sections []paginate.Section) error
}

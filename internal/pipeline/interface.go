package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Pipeline runs the asynchronous transcript extraction flow: a request is
// acknowledged with a processing record immediately, and a bounded worker
// fetches, normalizes and finalizes it in the background.
type Pipeline interface {
	// Begin resolves the video reference, persists a processing record and
	// schedules extraction. The returned record is the acknowledgment
	// snapshot; the stored record will move to completed or failed.
	Begin(ctx context.Context, rawRef, preferredLanguage string) (*transcript.Record, error)
	// Close waits for in-flight extractions to finish.
	Close()
}

package store

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Store persists transcript records, one JSON file per id, with an in-memory
// read cache. The file set is the source of truth; the cache never diverges
// from what a fresh file read would produce.
type Store interface {
	// Save upserts a record. The file is written (atomically) before the
	// cache entry is updated, so a crash mid-write leaves the previous state.
	Save(ctx context.Context, record *transcript.Record) error

	// Get returns the record for id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, id string) (*transcript.Record, error)

	// Delete removes the record from cache and disk. Reports whether
	// anything was actually removed; deleting a missing id is not an error.
	Delete(ctx context.Context, id string) (bool, error)

	// List enumerates persisted records as summaries, newest first,
	// truncated to limit (limit <= 0 means no truncation). Files that fail
	// to parse are skipped.
	List(ctx context.Context, limit int) ([]transcript.Summary, error)

	// Sweep deletes every record older than ttl and returns how many were
	// removed. Partial progress on failure is kept.
	Sweep(ctx context.Context, ttl time.Duration) (int, error)

	// Close stops the background sweeper and directory watcher.
	Close() error
}

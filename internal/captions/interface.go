package captions

import "context"

// Provider lists the caption tracks available for a video and fetches the
// timed entries of one track.
type Provider interface {
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	Fetch(ctx context.Context, track Track) ([]RawEntry, error)
}

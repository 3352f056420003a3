package generate

import "context"

// Generator turns transcript text into derived content via an LLM.
type Generator interface {
	// Summarize produces a prose summary of the transcript.
	Summarize(ctx context.Context, transcript string) (string, error)
	// Outline produces a sectioned deck outline of the transcript, with
	// each section opened by a numbered heading line.
	Outline(ctx context.Context, transcript string) (string, error)
}

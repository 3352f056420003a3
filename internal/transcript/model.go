// Package transcript defines the transcript record model and the segment
// normalizer. Records are produced by the pipeline and owned by the store
// afterwards.
package transcript

import (
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/captions"
)

// Status is the lifecycle state of a record. Transitions only go
// processing→completed or processing→failed; terminal records are immutable.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Segment is one timed unit of transcript text after normalization.
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Record is the persisted, status-bearing result of one transcript
// acquisition attempt.
type Record struct {
	ID                    string           `json:"id"`
	VideoID               string           `json:"video_id,omitempty"`
	Status                Status           `json:"status"`
	SelectedLanguage      string           `json:"selected_language,omitempty"`
	Segments              []Segment        `json:"segments,omitempty"`
	FullText              string           `json:"full_text,omitempty"`
	Preview               string           `json:"preview,omitempty"`
	AvailableLanguages    []captions.Track `json:"available_languages,omitempty"`
	Error                 string           `json:"error,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	ProcessingTimeSeconds float64          `json:"processing_time_seconds,omitempty"`
}

// Summary is the lightweight listing view of a record.
type Summary struct {
	ID               string    `json:"id"`
	VideoID          string    `json:"video_id,omitempty"`
	Status           Status    `json:"status"`
	SelectedLanguage string    `json:"selected_language,omitempty"`
	Preview          string    `json:"preview,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Summarize projects a record onto its listing view.
func (r *Record) Summarize() Summary {
	return Summary{
		ID:               r.ID,
		VideoID:          r.VideoID,
		Status:           r.Status,
		SelectedLanguage: r.SelectedLanguage,
		Preview:          r.Preview,
		CreatedAt:        r.CreatedAt,
	}
}

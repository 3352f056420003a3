package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// FromRecord outlines a completed transcript and writes it as a deck
// document named after the record id.
func (s *implService) FromRecord(ctx context.Context, rec *transcript.Record) (string, error) {
	if rec.Status != transcript.StatusCompleted {
		return "", errs.New(errs.KindPaginationInput, fmt.Sprintf("record %s is %s, not completed", rec.ID, rec.Status))
	}

	start := time.Now()
	outline, err := s.generator.Outline(ctx, rec.FullText)
	if err != nil {
		return "", fmt.Errorf("outline transcript: %w", err)
	}

	sections := paginate.SplitSections(outline, s.limits, s.policy)
	if len(sections) == 0 {
		return "", errs.New(errs.KindPaginationInput, "outline produced no sections")
	}

	title := fmt.Sprintf("Transcript %s", rec.VideoID)
	path, err := s.write(rec.ID, title, sections)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Deck written for record %s: %d sections in %.1fs",
		rec.ID, len(sections), time.Since(start).Seconds())
	return path, nil
}

// FromPayload writes a deck document from pre-structured slides.
func (s *implService) FromPayload(ctx context.Context, id string, payload *paginate.DeckPayload) (string, error) {
	sections := payload.Sections(s.limits, s.policy)
	if len(sections) == 0 {
		return "", errs.New(errs.KindPaginationInput, "payload produced no sections")
	}

	title := payload.Title
	if title == "" {
		title = fmt.Sprintf("Deck %s", id)
	}

	path, err := s.write(id, title, sections)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Deck written from payload %s: %d sections", id, len(sections))
	return path, nil
}

func (s *implService) write(id, title string, sections []paginate.Section) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errs.Wrap(errs.KindStorageIO, "create deck dir", err)
	}

	path := filepath.Join(s.dir, id+".docx")
	if err := s.sink.Write(path, title, sections); err != nil {
		return "", errs.Wrap(errs.KindStorageIO, "write deck", err)
	}
	return path, nil
}

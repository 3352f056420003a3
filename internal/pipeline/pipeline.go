package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/transcript-flow/internal/captions"
	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"github.com/nguyentantai21042004/transcript-flow/internal/videoref"
)

// Begin resolves the reference, persists a processing record and schedules
// background extraction. Invalid references fail synchronously; everything
// after acknowledgment surfaces through the stored record instead.
func (p *implPipeline) Begin(ctx context.Context, rawRef, preferredLanguage string) (*transcript.Record, error) {
	videoID, err := videoref.Resolve(rawRef)
	if err != nil {
		return nil, err
	}

	rec := &transcript.Record{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		Status:    transcript.StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.store.Save(ctx, rec); err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Accepted transcript request %s for video %s", rec.ID, videoID)

	p.wg.Add(1)
	go p.extract(rec.ID, videoID, preferredLanguage)

	snapshot := *rec
	return &snapshot, nil
}

// Close waits for in-flight extractions to finish.
func (p *implPipeline) Close() {
	p.wg.Wait()
}

// extract runs one extraction under its own deadline, detached from the
// request context, and finalizes the record exactly once.
func (p *implPipeline) extract(id, videoID, preferredLanguage string) {
	defer p.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.sem.acquire(ctx); err != nil {
		p.fail(ctx, id, nil, errs.Wrap(errs.KindFetchError, "wait for worker slot", err))
		return
	}
	defer p.sem.release()

	start := time.Now()

	tracks, err := p.provider.ListTracks(ctx, videoID)
	if err != nil {
		p.fail(ctx, id, nil, err)
		return
	}

	track, err := captions.Select(tracks, preferredLanguage)
	if err != nil {
		p.fail(ctx, id, tracks, err)
		return
	}

	entries, err := p.provider.Fetch(ctx, track)
	if err != nil {
		p.fail(ctx, id, tracks, err)
		return
	}

	segments, fullText, preview, err := transcript.Normalize(entries)
	if err != nil {
		p.fail(ctx, id, tracks, err)
		return
	}

	p.finalize(ctx, id, func(rec *transcript.Record) {
		rec.Status = transcript.StatusCompleted
		rec.SelectedLanguage = track.LanguageCode
		rec.Segments = segments
		rec.FullText = fullText
		rec.Preview = preview
		rec.AvailableLanguages = tracks
		rec.Error = ""
		rec.ProcessingTimeSeconds = time.Since(start).Seconds()
	})

	p.logger.Info(ctx, "Extraction %s completed: %d segments in %s (%s)",
		id, len(segments), track.LanguageCode, time.Since(start))
}

func (p *implPipeline) fail(ctx context.Context, id string, tracks []captions.Track, cause error) {
	p.logger.Error(ctx, "Extraction %s failed: %v", id, cause)
	p.finalize(ctx, id, func(rec *transcript.Record) {
		rec.Status = transcript.StatusFailed
		rec.AvailableLanguages = tracks
		rec.Error = cause.Error()
	})
}

// finalize applies mutate to the stored record and saves it. A record that
// is already terminal, or that was deleted mid-flight, is left alone. The
// outcome is persisted even when the extraction deadline already expired.
func (p *implPipeline) finalize(ctx context.Context, id string, mutate func(*transcript.Record)) {
	ctx = context.WithoutCancel(ctx)

	rec, err := p.store.Get(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "Finalize %s: load record: %v", id, err)
		return
	}
	if rec == nil {
		p.logger.Warn(ctx, "Finalize %s: record deleted mid-flight", id)
		return
	}
	if rec.Status.Terminal() {
		p.logger.Warn(ctx, "Finalize %s: record already %s", id, rec.Status)
		return
	}

	mutate(rec)
	if err := p.store.Save(ctx, rec); err != nil {
		p.logger.Error(ctx, "Finalize %s: save record: %v", id, err)
	}
}

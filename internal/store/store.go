package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

const recordExt = ".json"

func (s *implStore) recordPath(id string) string {
	return filepath.Join(s.dir, id+recordExt)
}

// Save upserts by id: atomic temp-then-rename file write first, cache second.
func (s *implStore) Save(ctx context.Context, record *transcript.Record) error {
	if record == nil || record.ID == "" {
		return errs.New(errs.KindStorageIO, "record id is required")
	}

	lock := s.idLock(record.ID)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errs.Wrap(errs.KindStorageIO, "encode record", err)
	}

	path := s.recordPath(record.ID)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return errs.Wrap(errs.KindStorageIO, "write record file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil {
			s.logger.Warn(ctx, "clean up temp file %s: %v", tmpPath, removeErr)
		}
		return errs.Wrap(errs.KindStorageIO, "replace record file", err)
	}

	s.cacheMu.Lock()
	s.cache[record.ID] = clone(record)
	s.cacheMu.Unlock()

	s.logger.Debug(ctx, "saved record %s (%s)", record.ID, record.Status)
	return nil
}

// clone detaches a record from its caller. Cached records must only change
// through Save, after the file write; handing out or retaining the caller's
// pointer would let mutations reach the cache ahead of the disk.
func clone(record *transcript.Record) *transcript.Record {
	c := *record
	return &c
}

// Get serves cache hits without I/O. A miss reads the file, populates the
// cache on success, returns (nil, nil) when the file is absent, and a
// MalformedRecord error (without caching) when it cannot be parsed.
func (s *implStore) Get(ctx context.Context, id string) (*transcript.Record, error) {
	s.cacheMu.RLock()
	cached, ok := s.cache[id]
	s.cacheMu.RUnlock()
	if ok {
		return clone(cached), nil
	}

	lock := s.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	// Another caller may have filled the cache while we waited.
	s.cacheMu.RLock()
	cached, ok = s.cache[id]
	s.cacheMu.RUnlock()
	if ok {
		return clone(cached), nil
	}

	data, err := os.ReadFile(s.recordPath(id))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindStorageIO, "read record file", err)
	}

	var record transcript.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errs.Wrap(errs.KindMalformedRecord, fmt.Sprintf("parse record %s", id), err)
	}

	s.cacheMu.Lock()
	s.cache[id] = &record
	s.cacheMu.Unlock()

	return clone(&record), nil
}

// Delete removes cache entry and file. Idempotent: the second call on the
// same id reports false without error.
func (s *implStore) Delete(ctx context.Context, id string) (bool, error) {
	lock := s.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.cacheMu.Lock()
	_, cached := s.cache[id]
	delete(s.cache, id)
	s.cacheMu.Unlock()

	err := os.Remove(s.recordPath(id))
	if os.IsNotExist(err) {
		return cached, nil
	}
	if err != nil {
		return false, errs.Wrap(errs.KindStorageIO, "delete record file", err)
	}

	s.logger.Debug(ctx, "deleted record %s", id)
	return true, nil
}

// List parses every persisted record into a summary, skipping files that
// fail to parse, newest first. Reads go straight to disk and do not
// populate the cache, so listing a large directory does not inflate it.
func (s *implStore) List(ctx context.Context, limit int) ([]transcript.Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errs.Wrap(errs.KindStorageIO, "read records dir", err)
	}

	summaries := make([]transcript.Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Debug(ctx, "skipping unreadable record file %s: %v", entry.Name(), err)
			continue
		}
		var record transcript.Record
		if err := json.Unmarshal(data, &record); err != nil {
			s.logger.Debug(ctx, "skipping malformed record file %s: %v", entry.Name(), err)
			continue
		}
		summaries = append(summaries, record.Summarize())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Sweep deletes every record created before now-ttl. Not transactional
// across records; failures leave partial progress.
func (s *implStore) Sweep(ctx context.Context, ttl time.Duration) (int, error) {
	summaries, err := s.List(ctx, 0)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for _, sum := range summaries {
		if !sum.CreatedAt.Before(cutoff) {
			continue
		}
		ok, err := s.Delete(ctx, sum.ID)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}

	if removed > 0 {
		s.logger.Info(ctx, "sweep removed %d expired records", removed)
	}
	return removed, nil
}

// startSweeper runs Sweep on a fixed interval until Close.
func (s *implStore) startSweeper(ttl, interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				if _, err := s.Sweep(ctx, ttl); err != nil {
					s.logger.Error(ctx, "scheduled sweep: %v", err)
				}
			}
		}
	}()
}

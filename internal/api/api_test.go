package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"github.com/nguyentantai21042004/transcript-flow/internal/videoref"
)

type stubPipeline struct{}

func (stubPipeline) Begin(ctx context.Context, rawRef, preferredLanguage string) (*transcript.Record, error) {
	videoID, err := videoref.Resolve(rawRef)
	if err != nil {
		return nil, err
	}
	return &transcript.Record{
		ID:        "pending-1",
		VideoID:   videoID,
		Status:    transcript.StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (stubPipeline) Close() {}

type stubGenerator struct {
	summary string
	err     error
}

func (s stubGenerator) Summarize(ctx context.Context, transcript string) (string, error) {
	return s.summary, s.err
}

func (s stubGenerator) Outline(ctx context.Context, transcript string) (string, error) {
	return s.summary, s.err
}

type stubDecks struct {
	path string
}

func (s stubDecks) FromRecord(ctx context.Context, rec *transcript.Record) (string, error) {
	if rec.Status != transcript.StatusCompleted {
		return "", errs.New(errs.KindPaginationInput, "record not completed")
	}
	return s.path, nil
}

func (s stubDecks) FromPayload(ctx context.Context, id string, payload *paginate.DeckPayload) (string, error) {
	return s.path, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(store.Options{Dir: t.TempDir()}, logger.New("error"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	r := NewRouter(Options{
		Pipeline:  stubPipeline{},
		Store:     st,
		Decks:     stubDecks{path: "/decks/out.docx"},
		Generator: stubGenerator{summary: "a concise summary"},
		Logger:    logger.New("error"),
	})
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func seedRecord(t *testing.T, st store.Store, rec *transcript.Record) {
	t.Helper()
	if err := st.Save(context.Background(), rec); err != nil {
		t.Fatalf("seed record: %v", err)
	}
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCreateTranscript(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transcripts",
		gin.H{"reference": "https://youtu.be/dQw4w9WgXcQ"})
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	if data["status"] != "processing" {
		t.Errorf("acknowledged status = %v, want processing", data["status"])
	}
	if data["video_id"] != "dQw4w9WgXcQ" {
		t.Errorf("video_id = %v", data["video_id"])
	}
}

func TestCreateTranscriptInvalidReference(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transcripts",
		gin.H{"reference": "not a reference"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	env := decodeEnvelope(t, w)
	errBody := env["error"].(map[string]any)
	if errBody["kind"] != string(errs.KindInvalidReference) {
		t.Errorf("error kind = %v, want %s", errBody["kind"], errs.KindInvalidReference)
	}
}

func TestGetTranscript(t *testing.T) {
	r, st := newTestRouter(t)
	seedRecord(t, st, &transcript.Record{
		ID:        "rec-1",
		VideoID:   "abc123def45",
		Status:    transcript.StatusCompleted,
		FullText:  "hello world",
		CreatedAt: time.Now().UTC(),
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/transcripts/rec-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	if data["full_text"] != "hello world" {
		t.Errorf("full_text = %v", data["full_text"])
	}
}

func TestGetTranscriptNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/transcripts/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetStatus(t *testing.T) {
	r, st := newTestRouter(t)
	seedRecord(t, st, &transcript.Record{
		ID:        "rec-2",
		Status:    transcript.StatusFailed,
		Error:     "captions disabled",
		CreatedAt: time.Now().UTC(),
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/transcripts/rec-2/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	if data["status"] != "failed" || data["error"] != "captions disabled" {
		t.Errorf("status payload = %v", data)
	}
}

func TestCreateSummary(t *testing.T) {
	r, st := newTestRouter(t)
	seedRecord(t, st, &transcript.Record{
		ID:        "rec-3",
		Status:    transcript.StatusCompleted,
		FullText:  "long transcript text",
		CreatedAt: time.Now().UTC(),
	})

	w := doJSON(t, r, http.MethodPost, "/api/v1/transcripts/rec-3/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	if data["summary"] != "a concise summary" {
		t.Errorf("summary = %v", data["summary"])
	}
	if data["word_count"] != float64(3) {
		t.Errorf("word_count = %v, want 3", data["word_count"])
	}
}

func TestCreateSummaryNotCompleted(t *testing.T) {
	r, st := newTestRouter(t)
	seedRecord(t, st, &transcript.Record{
		ID:        "rec-4",
		Status:    transcript.StatusProcessing,
		CreatedAt: time.Now().UTC(),
	})

	w := doJSON(t, r, http.MethodPost, "/api/v1/transcripts/rec-4/summary", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestDeleteTranscriptIdempotent(t *testing.T) {
	r, st := newTestRouter(t)
	seedRecord(t, st, &transcript.Record{
		ID:        "rec-5",
		Status:    transcript.StatusCompleted,
		CreatedAt: time.Now().UTC(),
	})

	w := doJSON(t, r, http.MethodDelete, "/api/v1/transcripts/rec-5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if data := decodeEnvelope(t, w)["data"].(map[string]any); data["deleted"] != true {
		t.Errorf("first delete reported %v", data["deleted"])
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/transcripts/rec-5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second delete status = %d, want 200", w.Code)
	}
	if data := decodeEnvelope(t, w)["data"].(map[string]any); data["deleted"] != false {
		t.Errorf("second delete reported %v", data["deleted"])
	}
}

func TestListTranscripts(t *testing.T) {
	r, st := newTestRouter(t)
	now := time.Now().UTC()
	seedRecord(t, st, &transcript.Record{ID: "old", Status: transcript.StatusCompleted, CreatedAt: now.Add(-time.Hour)})
	seedRecord(t, st, &transcript.Record{ID: "new", Status: transcript.StatusCompleted, CreatedAt: now})

	w := doJSON(t, r, http.MethodGet, "/api/v1/transcripts?limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	items := env["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if first := items[0].(map[string]any); first["id"] != "new" {
		t.Errorf("first item = %v, want the newest record", first["id"])
	}
}

func TestListTranscriptsBadLimit(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/transcripts?limit=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	env := decodeEnvelope(t, w)
	errBody := env["error"].(map[string]any)
	if errBody["kind"] != string(errs.KindInvalidArgument) {
		t.Errorf("error kind = %v, want %s", errBody["kind"], errs.KindInvalidArgument)
	}
}

func TestCreateDeckFromPayload(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decks", gin.H{
		"deck": gin.H{
			"title":  "My Deck",
			"slides": []gin.H{{"title": "First", "content": []string{"alpha"}}},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	if data["path"] != "/decks/out.docx" {
		t.Errorf("path = %v", data["path"])
	}
}

func TestCreateDeckFromRecord(t *testing.T) {
	r, st := newTestRouter(t)
	seedRecord(t, st, &transcript.Record{
		ID:        "rec-6",
		Status:    transcript.StatusCompleted,
		FullText:  "text",
		CreatedAt: time.Now().UTC(),
	})

	w := doJSON(t, r, http.MethodPost, "/api/v1/decks", gin.H{"record_id": "rec-6"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestCreateDeckMissingInput(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decks", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateDeckBadPayload(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decks", gin.H{"deck": gin.H{"slides": []gin.H{}}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	env := decodeEnvelope(t, w)
	errBody := env["error"].(map[string]any)
	if errBody["kind"] != string(errs.KindPaginationInput) {
		t.Errorf("error kind = %v, want %s", errBody["kind"], errs.KindPaginationInput)
	}
}

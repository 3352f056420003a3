package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

func (h *handler) health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok"})
}

type createTranscriptRequest struct {
	Reference string `json:"reference"`
	Language  string `json:"language"`
}

// createTranscript acknowledges with the processing record; extraction runs
// in the background.
func (h *handler) createTranscript(c *gin.Context) {
	var req createTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.Wrap(errs.KindInvalidArgument, "decode request", err))
		return
	}

	rec, err := h.pipeline.Begin(c.Request.Context(), req.Reference, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusAccepted, rec)
}

func (h *handler) listTranscripts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, errs.New(errs.KindInvalidArgument, "limit must be an integer"))
			return
		}
		limit = n
	}

	summaries, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, summaries)
}

// load fetches a record, translating absence into NotFound.
func (h *handler) load(c *gin.Context, id string) (*transcript.Record, bool) {
	rec, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if rec == nil {
		respondError(c, errs.New(errs.KindNotFound, fmt.Sprintf("record %s not found", id)))
		return nil, false
	}
	return rec, true
}

func (h *handler) getTranscript(c *gin.Context) {
	rec, ok := h.load(c, c.Param("id"))
	if !ok {
		return
	}
	respond(c, http.StatusOK, rec)
}

func (h *handler) getStatus(c *gin.Context) {
	rec, ok := h.load(c, c.Param("id"))
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{
		"id":     rec.ID,
		"status": rec.Status,
		"error":  rec.Error,
	})
}

func (h *handler) createSummary(c *gin.Context) {
	rec, ok := h.load(c, c.Param("id"))
	if !ok {
		return
	}
	if rec.Status != transcript.StatusCompleted {
		respondError(c, errs.New(errs.KindEmptyTranscript, fmt.Sprintf("record %s is %s, not completed", rec.ID, rec.Status)))
		return
	}

	summary, err := h.generator.Summarize(c.Request.Context(), rec.FullText)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"id":         rec.ID,
		"summary":    summary,
		"word_count": len(strings.Fields(summary)),
	})
}

func (h *handler) deleteTranscript(c *gin.Context) {
	removed, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": removed})
}

type createDeckRequest struct {
	RecordID string          `json:"record_id"`
	Deck     json.RawMessage `json:"deck"`
}

// createDeck builds a deck either from a completed transcript record or from
// a pre-structured slide payload.
func (h *handler) createDeck(c *gin.Context) {
	var req createDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.Wrap(errs.KindPaginationInput, "decode request", err))
		return
	}

	switch {
	case req.RecordID != "":
		rec, ok := h.load(c, req.RecordID)
		if !ok {
			return
		}
		path, err := h.decks.FromRecord(c.Request.Context(), rec)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, gin.H{"id": rec.ID, "path": path})

	case len(req.Deck) > 0:
		payload, err := paginate.ParseDeckPayload(req.Deck)
		if err != nil {
			respondError(c, err)
			return
		}
		id := uuid.NewString()
		path, err := h.decks.FromPayload(c.Request.Context(), id, payload)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, gin.H{"id": id, "path": path})

	default:
		respondError(c, errs.New(errs.KindPaginationInput, "either record_id or deck is required"))
	}
}

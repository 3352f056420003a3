package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

// envelope is the uniform response shape.
type envelope struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *errorBody `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data, Timestamp: time.Now().UTC()})
}

func respondError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	c.JSON(statusFor(kind), envelope{
		Success:   false,
		Error:     &errorBody{Kind: string(kind), Message: err.Error()},
		Timestamp: time.Now().UTC(),
	})
}

// statusFor maps failure kinds to HTTP status codes. Unclassified errors
// are treated as internal.
func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindInvalidReference, errs.KindPaginationInput, errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindTracksUnavailable, errs.KindNoTranscriptAvailable, errs.KindEmptyTranscript:
		return http.StatusUnprocessableEntity
	case errs.KindFetchError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

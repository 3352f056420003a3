package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without string matching.
type Kind string

const (
	KindInvalidReference      Kind = "invalid_reference"
	KindTracksUnavailable     Kind = "tracks_unavailable"
	KindNotFound              Kind = "not_found"
	KindFetchError            Kind = "fetch_error"
	KindNoTranscriptAvailable Kind = "no_transcript_available"
	KindEmptyTranscript       Kind = "empty_transcript"
	KindStorageIO             Kind = "storage_io_error"
	KindMalformedRecord       Kind = "malformed_record"
	KindGeneration            Kind = "generation_error"
	KindPaginationInput       Kind = "pagination_input_invalid"
	KindInvalidArgument       Kind = "invalid_argument"
)

// Error is the application error carried across package boundaries.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind around a cause.
// Returns nil when cause is nil.
func Wrap(kind Kind, message string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the Kind from err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

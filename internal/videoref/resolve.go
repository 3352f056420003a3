// Package videoref resolves loosely structured video references to stable
// video identifiers.
package videoref

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

// Recognized reference shapes, tried in order. First match wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?#]+)`),
	regexp.MustCompile(`youtu\.be/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^&\n?#]+)`),
}

// Identifier alphabet: alphanumerics plus _ and -. Anything after the first
// character outside it is trailing garbage (fragment, extra params).
var trailingGarbage = regexp.MustCompile(`[^a-zA-Z0-9_-].*`)

// Resolve extracts the video ID from a reference string.
// Returns an InvalidReference error when the reference is empty or matches
// no recognized shape.
func Resolve(reference string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", errs.New(errs.KindInvalidReference, "empty video reference")
	}

	for _, p := range patterns {
		m := p.FindStringSubmatch(reference)
		if m == nil {
			continue
		}
		id := trailingGarbage.ReplaceAllString(m[1], "")
		if id == "" {
			continue
		}
		return id, nil
	}

	return "", errs.New(errs.KindInvalidReference, "unrecognized video reference format")
}

// Valid reports whether reference resolves to a video ID.
func Valid(reference string) bool {
	_, err := Resolve(reference)
	return err == nil
}

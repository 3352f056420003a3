package transcript

import (
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/captions"
	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

// previewLimit caps the preview at this many characters of full text.
const previewLimit = 200

// Normalize converts raw provider entries into validated segments plus the
// derived full text and preview. Every entry becomes exactly one segment, in
// provider order; nothing is dropped or re-sorted here.
//
// Fails with EmptyTranscript when there are no entries or every segment text
// is empty.
func Normalize(entries []captions.RawEntry) ([]Segment, string, string, error) {
	if len(entries) == 0 {
		return nil, "", "", errs.New(errs.KindEmptyTranscript, "transcript has no entries")
	}

	segments := make([]Segment, 0, len(entries))
	var sb strings.Builder
	for _, e := range entries {
		seg := Segment{
			Start:    coerceSeconds(e.Start),
			Duration: coerceSeconds(e.Dur),
			Text:     strings.TrimSpace(e.Text),
		}
		segments = append(segments, seg)

		if seg.Text != "" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(seg.Text)
		}
	}

	fullText := sb.String()
	if fullText == "" {
		return nil, "", "", errs.New(errs.KindEmptyTranscript, "transcript contains no text")
	}

	return segments, fullText, preview(fullText), nil
}

// coerceSeconds parses a provider timing value. Missing, unparsable, or
// negative values default to 0.0.
func coerceSeconds(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0.0
	}
	return v
}

// preview returns the first 200 characters of text, ellipsis-suffixed when
// truncated.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}

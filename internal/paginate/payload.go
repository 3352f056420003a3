package paginate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

// DeckPayload is the pre-structured input for JSON-driven pagination: the
// shape text-generation providers are prompted to return.
type DeckPayload struct {
	Title  string         `json:"title"`
	Slides []SlidePayload `json:"slides"`
}

// SlidePayload is one structured slide: a title plus content lines.
type SlidePayload struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// ParseDeckPayload decodes and validates structured pagination input.
// Any malformation fails fast with PaginationInputInvalid; no partial
// output is produced.
func ParseDeckPayload(data []byte) (*DeckPayload, error) {
	var payload DeckPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errs.Wrap(errs.KindPaginationInput, "decode deck payload", err)
	}

	if len(payload.Slides) == 0 {
		return nil, errs.New(errs.KindPaginationInput, "deck payload has no slides")
	}
	for i, slide := range payload.Slides {
		if strings.TrimSpace(slide.Title) == "" && len(slide.Content) == 0 {
			return nil, errs.New(errs.KindPaginationInput, fmt.Sprintf("slide %d has neither title nor content", i))
		}
	}

	return &payload, nil
}

// Sections converts the structured payload into paginated sections, applying
// the same budgets and empty-body policy as free-text splitting.
func (p *DeckPayload) Sections(limits Limits, policy Policy) []Section {
	var sections []Section
	for _, slide := range p.Slides {
		pages := PaginateLines(slide.Content, limits)
		if len(pages) == 0 {
			if policy == PolicySkip {
				continue
			}
			pages = []Page{{Ordinal: 0, Text: PlaceholderNote}}
		}
		sections = append(sections, Section{Title: CleanLine(slide.Title), Pages: pages})
	}
	return sections
}

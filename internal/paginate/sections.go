package paginate

import (
	"regexp"
	"strings"
)

// Policy decides what to do with a section whose body is empty after title
// extraction.
type Policy int

const (
	// PolicyPlaceholder emits a single page carrying a placeholder note.
	PolicyPlaceholder Policy = iota
	// PolicySkip drops the section entirely.
	PolicySkip
)

// PolicyFromString maps the config spelling to a Policy. Unknown values fall
// back to the placeholder behavior.
func PolicyFromString(s string) Policy {
	if strings.EqualFold(s, "skip") {
		return PolicySkip
	}
	return PolicyPlaceholder
}

// PlaceholderNote is the body of a title-only section's single page under
// PolicyPlaceholder.
const PlaceholderNote = "(No additional content for this section)"

const titleWordLimit = 5

// Section is a titled group of consecutive pages from one heading-delimited
// part of the source text.
type Section struct {
	Title string `json:"title"`
	Pages []Page `json:"pages"`
}

// A section heading is a line opening with a roman-numeral or integer marker
// followed by a period and whitespace ("I. Intro", "2. Body").
var reSectionHeading = regexp.MustCompile(`(?i)^\s*(?:[IVXLCDM]+\.|\d+\.)\s+`)

// reTitleMarker captures the title text after the heading marker.
var reTitleMarker = regexp.MustCompile(`(?i)^\s*(?:[IVXLCDM]+\.|\d+\.)\s*(.*)$`)

// SplitSections splits text at heading lines, paginates each chunk's body
// under limits, and extracts cleaned titles. The first non-empty line of a
// chunk is its title line; titles longer than five words are truncated with
// an ellipsis. Chunks with no content at all are dropped; chunks whose body
// is empty after title extraction follow policy.
func SplitSections(text string, limits Limits, policy Policy) []Section {
	var sections []Section
	for _, chunk := range splitChunks(text) {
		lines := make([]string, 0, len(chunk))
		for _, line := range chunk {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, strings.TrimSpace(line))
			}
		}
		if len(lines) == 0 {
			continue
		}

		title := sectionTitle(lines[0])
		pages := PaginateLines(lines[1:], limits)

		if len(pages) == 0 {
			if policy == PolicySkip {
				continue
			}
			pages = []Page{{Ordinal: 0, Text: PlaceholderNote}}
		}

		sections = append(sections, Section{Title: title, Pages: pages})
	}
	return sections
}

// splitChunks cuts text into line groups, starting a new group at each
// heading line. Content before the first heading forms the first group.
func splitChunks(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var chunks [][]string
	var current []string
	for i, line := range lines {
		if i > 0 && reSectionHeading.MatchString(line) {
			if len(current) > 0 {
				chunks = append(chunks, current)
			}
			current = []string{line}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// sectionTitle strips the heading marker and formatting from a title line
// and truncates it to the first five words.
func sectionTitle(line string) string {
	if m := reTitleMarker.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[1]) != "" {
		line = m[1]
	}
	title := CleanLine(line)

	words := strings.Fields(title)
	if len(words) > titleWordLimit {
		title = strings.Join(words[:titleWordLimit], " ") + "..."
	}
	return title
}

// ContinuationTitle renders a section title for the page at ordinal within
// that section. Pages after the first are marked as continuations.
func ContinuationTitle(title string, ordinal int) string {
	if ordinal > 0 {
		return title + " (continued)"
	}
	return title
}

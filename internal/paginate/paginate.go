// Package paginate packs long-form text into size-bounded presentation pages
// and splits heading-structured text into titled sections.
package paginate

import (
	"strings"
	"unicode/utf8"
)

// Limits bounds a single page. Both budgets are explicit; there are no
// implicit defaults here — callers pass their configuration.
type Limits struct {
	MaxWords int
	MaxChars int
}

// Page is one size-bounded chunk of text destined for a single slide.
// Ordinal starts at 0 within the page's section.
type Page struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// WordCount returns the number of words on the page.
func (p Page) WordCount() int {
	return len(strings.Fields(p.Text))
}

// Paginate cleans text line by line, joins it into a single word stream, and
// greedily packs pages: a word is appended only while the page stays within
// both budgets. Words are never split; a single word longer than MaxChars is
// emitted alone as its own page. Empty input yields no pages.
func Paginate(text string, limits Limits) []Page {
	return PaginateLines(strings.Split(text, "\n"), limits)
}

// PaginateLines is Paginate over pre-split lines.
func PaginateLines(lines []string, limits Limits) []Page {
	var words []string
	for _, line := range lines {
		words = append(words, strings.Fields(CleanLine(line))...)
	}
	if len(words) == 0 {
		return nil
	}

	var pages []Page
	var current []string
	chars := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		pages = append(pages, Page{
			Ordinal: len(pages),
			Text:    strings.Join(current, " "),
		})
		current = current[:0]
		chars = 0
	}

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		added := wordLen
		if len(current) > 0 {
			added++ // separating space
		}
		if len(current) > 0 && (chars+added > limits.MaxChars || len(current)+1 > limits.MaxWords) {
			flush()
			added = wordLen
		}
		current = append(current, word)
		chars += added
	}
	flush()

	return pages
}

package captions

import (
	"fmt"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

// englishVariants is scanned in order when no preferred language matches.
var englishVariants = []string{"en", "en-US", "en-GB", "en-CA", "en-AU"}

// Select deterministically picks the best track from the listing.
//
// Priority, with listing order as tie-break:
//  1. exact preferredLanguage code match, manual over generated
//  2. English variants in fixed order, whole manual partition before
//     the generated partition
//  3. first manual track, else first generated track
func Select(tracks []Track, preferredLanguage string) (Track, error) {
	if len(tracks) == 0 {
		return Track{}, errs.New(errs.KindNoTranscriptAvailable, "no caption tracks available")
	}

	var manual, generated []Track
	for _, t := range tracks {
		if t.IsGenerated {
			generated = append(generated, t)
		} else {
			manual = append(manual, t)
		}
	}

	if preferredLanguage != "" {
		for _, partition := range [][]Track{manual, generated} {
			for _, t := range partition {
				if t.LanguageCode == preferredLanguage {
					return t, nil
				}
			}
		}
	}

	for _, partition := range [][]Track{manual, generated} {
		for _, code := range englishVariants {
			for _, t := range partition {
				if t.LanguageCode == code {
					return t, nil
				}
			}
		}
	}

	if len(manual) > 0 {
		return manual[0], nil
	}
	if len(generated) > 0 {
		return generated[0], nil
	}

	// Unreachable: tracks is non-empty, so one partition has entries.
	return Track{}, errs.New(errs.KindNoTranscriptAvailable, fmt.Sprintf("no usable track among %d", len(tracks)))
}

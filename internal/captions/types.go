package captions

// Track is one available caption stream for a video, distinguished by
// language and generated/manual origin.
type Track struct {
	LanguageName   string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`

	// fetchURL is the provider-internal timedtext URL for this track.
	// Not serialized; tracks built by callers (tests, replays) have none.
	fetchURL string
}

// RawEntry is one provider-supplied timed caption entry, unvalidated.
// Start and Dur keep the provider's string form; the normalizer coerces them.
type RawEntry struct {
	Start string
	Dur   string
	Text  string
}

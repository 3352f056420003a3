package captions

// InnerTube /player request and response types. Only the caption-related
// slice of the response is modeled.

const (
	playerPath       = "/youtubei/v1/player"
	androidVersion   = "20.10.38"
	androidUserAgent = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"
)

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL        string    `json:"baseUrl"`
	Name           trackName `json:"name"`
	LanguageCode   string    `json:"languageCode"`
	Kind           string    `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool      `json:"isTranslatable"`
}

type trackName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (n trackName) text() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	for _, r := range n.Runs {
		if r.Text != "" {
			return r.Text
		}
	}
	return ""
}

// Timedtext XML types.

type timedText struct {
	Lines []timedLine `xml:"text"`
}

type timedLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

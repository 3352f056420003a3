package captions

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

// ListTracks lists the caption tracks of a video via the InnerTube /player
// endpoint with an ANDROID client context, which serves caption metadata
// without a browser session.
func (c *implClient) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindTracksUnavailable, "encode player request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+playerPath+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errs.Wrap(errs.KindTracksUnavailable, "build player request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.KindTracksUnavailable, "player request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.New(errs.KindNotFound, fmt.Sprintf("video %s not found", videoID))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(errs.KindTracksUnavailable, fmt.Sprintf("player endpoint returned HTTP %d", resp.StatusCode))
	}

	var player playerResp
	if err := json.NewDecoder(io.LimitReader(resp.Body, 6*1024*1024)).Decode(&player); err != nil {
		return nil, errs.Wrap(errs.KindTracksUnavailable, "decode player response", err)
	}

	if player.Captions == nil {
		if ps := player.PlayabilityStatus; ps != nil {
			if ps.Status == "ERROR" {
				return nil, errs.New(errs.KindNotFound, fmt.Sprintf("video %s: %s", videoID, ps.Reason))
			}
			if ps.Reason != "" {
				return nil, errs.New(errs.KindTracksUnavailable, fmt.Sprintf("captions unavailable: %s", ps.Reason))
			}
		}
		return nil, errs.New(errs.KindTracksUnavailable, "captions are disabled for this video")
	}

	raw := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	tracks := make([]Track, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, Track{
			LanguageName:   t.Name.text(),
			LanguageCode:   t.LanguageCode,
			IsGenerated:    t.Kind == "asr",
			IsTranslatable: t.IsTranslatable,
			fetchURL:       t.BaseURL,
		})
	}

	c.logger.Debug(ctx, "listed %d caption tracks for %s", len(tracks), videoID)
	return tracks, nil
}

// Fetch downloads and parses the timedtext XML of one track into raw entries.
// Entries keep the provider's string timing attributes; no validation here.
func (c *implClient) Fetch(ctx context.Context, track Track) ([]RawEntry, error) {
	if track.fetchURL == "" {
		return nil, errs.New(errs.KindFetchError, fmt.Sprintf("track %s has no fetch URL", track.LanguageCode))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.fetchURL, nil)
	if err != nil {
		return nil, errs.Wrap(errs.KindFetchError, "build timedtext request", err)
	}
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.KindFetchError, "timedtext request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(errs.KindFetchError, fmt.Sprintf("timedtext returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return nil, errs.Wrap(errs.KindFetchError, "read timedtext", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, errs.Wrap(errs.KindFetchError, "parse timedtext XML", err)
	}

	entries := make([]RawEntry, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		entries = append(entries, RawEntry{
			Start: line.Start,
			Dur:   line.Dur,
			Text:  cleanCaptionText(line.Text),
		})
	}

	c.logger.Debug(ctx, "fetched %d entries for track %s", len(entries), track.LanguageCode)
	return entries, nil
}

// cleanCaptionText unescapes HTML entities left in timedtext payloads.
// Double-unescape handles the provider's &amp;#39; style encoding.
func cleanCaptionText(s string) string {
	s = html.UnescapeString(html.UnescapeString(s))
	return strings.ReplaceAll(s, " ", " ")
}

package sources

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Caption track discovery and transcript fetching.
// Primary:  scrape watch page ytInitialPlayerResponse → caption tracks (works from any IP)
// Fallback: ANDROID Innertube /player → captionTracks

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// fetchPlayerViaPageScrape scrapes the YouTube watch page HTML and extracts
// ytInitialPlayerResponse.
func fetchPlayerViaPageScrape(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ytWatchURL+videoID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	idx := strings.Index(string(body), ytInitialPlayerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &playerResp, nil
}

// fetchPlayerViaInnertube uses the ANDROID Innertube /player endpoint.
func fetchPlayerViaInnertube(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	data, err := postInnerTubeANDROID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	var playerResp innertubePlayerResp
	if err := json.Unmarshal(data, &playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &playerResp, nil
}

// captionTracks returns the caption tracks for a video, trying the page
// scrape first and the ANDROID player on failure. Provider failures are
// collapsed into the user-facing error taxonomy.
func captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	playerResp, err := fetchPlayerViaPageScrape(ctx, videoID)
	if err != nil {
		slog.Warn("youtube: page scrape failed, trying player",
			slog.String("id", videoID), slog.Any("err", err))
		playerResp, err = fetchPlayerViaInnertube(ctx, videoID)
		if err != nil {
			return nil, engine.Errorf(engine.KindNoTranscript, "could not retrieve transcript data: %v", err)
		}
	}

	if ps := playerResp.PlayabilityStatus; ps != nil && ps.Status != "OK" && playerResp.Captions == nil {
		reason := ps.Reason
		if reason == "" {
			reason = ps.Status
		}
		if strings.Contains(strings.ToLower(reason), "invalid") {
			return nil, engine.Errorf(engine.KindInvalidVideoID, "invalid video ID provided; could not fetch transcript: %s", reason)
		}
		return nil, engine.Errorf(engine.KindVideoUnavailable, "the requested video is unavailable or private: %s", reason)
	}
	if playerResp.Captions == nil {
		return nil, engine.Errorf(engine.KindNoTranscript, "no transcripts available for this video")
	}
	tracks := playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, engine.Errorf(engine.KindNoTranscript, "no transcripts available for this video")
	}
	return tracks, nil
}

// ListLanguages returns the available transcript tracks for a video, sorted
// by display name. Returns an empty slice when the lookup fails entirely.
func ListLanguages(ctx context.Context, videoID string) []engine.LanguageOption {
	tracks, err := captionTracks(ctx, videoID)
	if err != nil {
		slog.Debug("youtube: language listing failed",
			slog.String("id", videoID), slog.Any("err", err))
		return []engine.LanguageOption{}
	}
	langs := make([]engine.LanguageOption, 0, len(tracks))
	for _, t := range tracks {
		langs = append(langs, engine.LanguageOption{
			Language:     t.Name.String(),
			LanguageCode: t.LanguageCode,
			IsGenerated:  t.Kind == "asr",
		})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Language < langs[j].Language })
	return langs
}

// findTrack returns the first track matching the language code, preferring
// manually-created tracks over auto-generated ones.
func findTrack(tracks []captionTrack, lang string, manualOnly bool) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == lang && t.Kind != "asr" {
			return t, true
		}
	}
	if manualOnly {
		return captionTrack{}, false
	}
	for _, t := range tracks {
		if t.LanguageCode == lang {
			return t, true
		}
	}
	return captionTrack{}, false
}

// FetchTranscript retrieves the timed transcript segments for a video.
// Returns the segments and the language code actually used.
//
// With no requested language the provider's first available track is used.
// With a requested language: direct fetch in that language; else a
// manually-created track in that language if one exists, else the first
// track of any language, translated into the requested language when
// possible; if translation fails the track's own language is used and
// reported instead.
func FetchTranscript(ctx context.Context, videoID, languageCode string) ([]engine.TranscriptSegment, string, error) {
	tracks, err := captionTracks(ctx, videoID)
	if err != nil {
		return nil, "", err
	}

	if languageCode == "" {
		segs, err := fetchTimedText(ctx, tracks[0].BaseURL)
		if err != nil {
			return nil, "", engine.Errorf(engine.KindNoTranscript, "could not retrieve transcript: %v", err)
		}
		return segs, tracks[0].LanguageCode, nil
	}

	// Direct fetch in the requested language.
	if track, ok := findTrack(tracks, languageCode, false); ok {
		if segs, err := fetchTimedText(ctx, track.BaseURL); err == nil {
			return segs, track.LanguageCode, nil
		} else {
			slog.Debug("youtube: direct track fetch failed, falling back",
				slog.String("id", videoID), slog.String("lang", languageCode), slog.Any("err", err))
		}
	}

	// Fallback: manual track in the requested language, else first track.
	candidate, ok := findTrack(tracks, languageCode, true)
	if !ok {
		candidate = tracks[0]
	}

	// Attempt translation into the requested language.
	if candidate.IsTranslatable {
		if segs, err := fetchTimedText(ctx, translatedURL(candidate.BaseURL, languageCode)); err == nil {
			return segs, languageCode, nil
		} else {
			slog.Debug("youtube: translation failed, using original track",
				slog.String("id", videoID), slog.String("lang", languageCode), slog.Any("err", err))
		}
	}

	// Last resort: the candidate track in its own language.
	segs, err := fetchTimedText(ctx, candidate.BaseURL)
	if err != nil {
		return nil, "", engine.Errorf(engine.KindNoTranscript, "could not retrieve transcript: %v", err)
	}
	return segs, candidate.LanguageCode, nil
}

// translatedURL appends the timedtext translation parameter to a caption URL.
func translatedURL(baseURL, lang string) string {
	return baseURL + "&tlang=" + lang
}

// fetchTimedText fetches and parses a YouTube timedtext XML caption URL
// into timed segments.
func fetchTimedText(ctx context.Context, baseURL string) ([]engine.TranscriptSegment, error) {
	engine.IncrTimedtextRequests()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// parseTimedText converts timedtext XML into transcript segments.
// Caption text is double-encoded: the XML decoder leaves HTML entities
// (&#39; etc.) which are unescaped here.
func parseTimedText(body []byte) ([]engine.TranscriptSegment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	if len(tt.Lines) == 0 {
		return nil, fmt.Errorf("empty timedtext document")
	}
	segs := make([]engine.TranscriptSegment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		segs = append(segs, engine.TranscriptSegment{
			Text:     engine.CleanHTML(html.UnescapeString(line.Text)),
			Start:    line.Start,
			Duration: line.Dur,
		})
	}
	return segs, nil
}

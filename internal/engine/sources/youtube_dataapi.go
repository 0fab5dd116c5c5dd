package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// YouTube Data API v3 plumbing: best-effort title lookup (with public oEmbed
// fallback) and playlist/channel expansion. All calls require the configured
// API key except oEmbed.

const (
	ytDataAPIBase = "https://www.googleapis.com/youtube/v3"
	ytOEmbedURL   = "https://www.youtube.com/oembed"

	// dataAPIPageSize is the playlistItems page size used while expanding.
	dataAPIPageSize = 50
)

// --- Data API response types ---

type ytVideosResp struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type ytPlaylistItemsResp struct {
	Items []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type ytChannelsResp struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type ytChannelSearchResp struct {
	Items []struct {
		Snippet struct {
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

// dataAPIGet performs a GET against a Data API endpoint with the configured
// key. Returns nil and logs on any failure — Data API lookups are always
// best-effort here.
func dataAPIGet(ctx context.Context, endpoint string, params url.Values) []byte {
	if !engine.HasAPIKey() {
		slog.Warn("no YouTube API key found, skipping Data API call", slog.String("endpoint", endpoint))
		return nil
	}
	engine.IncrDataAPIRequests()

	params.Set("key", engine.Cfg.YouTubeAPIKey)
	apiURL := ytDataAPIBase + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		slog.Error("youtube data API request build failed", slog.String("endpoint", endpoint), slog.Any("err", err))
		return nil
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		slog.Error("youtube data API request failed", slog.String("endpoint", endpoint), slog.Any("err", err))
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		slog.Error("youtube data API read failed", slog.String("endpoint", endpoint), slog.Any("err", err))
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		slog.Error("youtube data API error",
			slog.Int("status", resp.StatusCode),
			slog.String("endpoint", endpoint),
			slog.String("body", engine.TruncateRunes(string(body), 200, "")))
		return nil
	}
	return body
}

// FetchTitle looks up a video title, best-effort. Uses the Data API when a
// key is configured, falling back to the public oEmbed endpoint. Never
// returns an error — a missing title is not a pipeline failure.
func FetchTitle(ctx context.Context, videoID string) (string, bool) {
	if engine.HasAPIKey() {
		params := url.Values{}
		params.Set("part", "snippet")
		params.Set("id", videoID)
		if data := dataAPIGet(ctx, "videos", params); data != nil {
			var result ytVideosResp
			if err := json.Unmarshal(data, &result); err == nil && len(result.Items) > 0 {
				if title := strings.TrimSpace(result.Items[0].Snippet.Title); title != "" {
					return title, true
				}
			}
		}
	}
	return fetchTitleOEmbed(ctx, videoID)
}

// fetchTitleOEmbed queries the public oEmbed endpoint for a video title.
func fetchTitleOEmbed(ctx context.Context, videoID string) (string, bool) {
	engine.IncrOEmbedRequests()

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.OEmbedTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("url", ytWatchURL+videoID)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ytOEmbedURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("oembed title lookup failed", slog.String("id", videoID), slog.Any("err", err))
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false
	}
	title := strings.TrimSpace(payload.Title)
	return title, title != ""
}

// PlaylistVideoIDs pages through a playlist's items collecting video IDs,
// up to limit. Stops early once the limit is reached or pages are
// exhausted. API failures end the paging and return what was collected.
func PlaylistVideoIDs(ctx context.Context, playlistID string, limit int) []string {
	var results []string
	pageToken := ""
	for {
		params := url.Values{}
		params.Set("part", "contentDetails")
		params.Set("maxResults", fmt.Sprintf("%d", dataAPIPageSize))
		params.Set("playlistId", playlistID)
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}
		data := dataAPIGet(ctx, "playlistItems", params)
		if data == nil {
			return results
		}
		var page ytPlaylistItemsResp
		if err := json.Unmarshal(data, &page); err != nil {
			slog.Error("decode playlistItems failed", slog.String("playlist", playlistID), slog.Any("err", err))
			return results
		}
		for _, item := range page.Items {
			if vid := item.ContentDetails.VideoID; vid != "" {
				results = append(results, vid)
				if len(results) >= limit {
					return results
				}
			}
		}
		if page.NextPageToken == "" || len(results) >= limit {
			return results
		}
		pageToken = page.NextPageToken
	}
}

// UploadsPlaylistID resolves a channel's uploads playlist via a
// channel-details call. Returns false when the channel cannot be resolved.
func UploadsPlaylistID(ctx context.Context, channelID string) (string, bool) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)
	data := dataAPIGet(ctx, "channels", params)
	if data == nil {
		return "", false
	}
	var result ytChannelsResp
	if err := json.Unmarshal(data, &result); err != nil || len(result.Items) == 0 {
		return "", false
	}
	uploads := result.Items[0].ContentDetails.RelatedPlaylists.Uploads
	return uploads, uploads != ""
}

// ResolveChannelHandle resolves an @handle to a channel ID via a search call.
func ResolveChannelHandle(ctx context.Context, handle string) (string, bool) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "channel")
	params.Set("q", "@"+handle)
	params.Set("maxResults", "1")
	data := dataAPIGet(ctx, "search", params)
	if data == nil {
		return "", false
	}
	var result ytChannelSearchResp
	if err := json.Unmarshal(data, &result); err != nil || len(result.Items) == 0 {
		return "", false
	}
	cid := result.Items[0].Snippet.ChannelID
	return cid, cid != ""
}

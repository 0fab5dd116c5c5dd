package transcripts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
)

// credentialHint names the env vars enabling playlist/channel expansion.
const credentialHint = "YOUTUBE_API_KEY / YT_API_KEY"

// Network seams, replaceable in tests.
var (
	playlistVideoIDs     = sources.PlaylistVideoIDs
	uploadsPlaylistID    = sources.UploadsPlaylistID
	resolveChannelHandle = sources.ResolveChannelHandle
)

// ExpansionResult is the outcome of expanding a mixed batch of inputs.
// VideoIDs is deduplicated with first-seen order preserved across all
// sources (direct URLs, then playlist, then channel). Errors are
// informational — expansion continues past each one.
type ExpansionResult struct {
	VideoIDs []string
	Errors   []string
}

// Expand turns direct URLs plus optional playlist/channel references into
// a deduplicated, insertion-ordered list of video IDs.
func Expand(ctx context.Context, urls []string, playlistURL, channelURL string, limit int) ExpansionResult {
	res := ExpansionResult{Errors: []string{}}
	seen := make(map[string]bool)

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			res.VideoIDs = append(res.VideoIDs, id)
		}
	}

	for _, u := range urls {
		id, err := ParseVideoID(u)
		if err == nil {
			add(id)
			continue
		}
		// Playlist/channel-shaped entries in the plain list are accepted
		// silently but not expanded.
		_, isPlaylist := ParsePlaylistID(u)
		_, isChannel := ParseChannelID(u)
		_, isHandle := ParseChannelHandle(u)
		if !isPlaylist && !isChannel && !isHandle {
			res.Errors = append(res.Errors, fmt.Sprintf("Unrecognized URL (not a video/playlist/channel): %s", u))
		}
	}

	if playlistURL != "" {
		if !engine.HasAPIKey() {
			res.Errors = append(res.Errors, "Playlist expansion requires "+credentialHint+".")
		} else if plid, ok := ParsePlaylistID(playlistURL); ok {
			for _, id := range playlistVideoIDs(ctx, plid, limit) {
				add(id)
			}
		} else {
			res.Errors = append(res.Errors, "Could not extract playlist ID from playlist_url.")
		}
	}

	if channelURL != "" {
		if !engine.HasAPIKey() {
			res.Errors = append(res.Errors, "Channel expansion requires "+credentialHint+".")
		} else if ids := channelVideoIDs(ctx, channelURL, limit); len(ids) > 0 {
			for _, id := range ids {
				add(id)
			}
		} else {
			res.Errors = append(res.Errors, "Could not resolve channel videos from channel_url.")
		}
	}

	slog.Info("expansion finished",
		slog.Int("videos", len(res.VideoIDs)),
		slog.Int("errors", len(res.Errors)))
	return res
}

// channelVideoIDs resolves a channel reference to its recent upload IDs:
// direct /channel/UC... form or an @handle resolved via search, then the
// uploads playlist paged like any other playlist.
func channelVideoIDs(ctx context.Context, channelURL string, limit int) []string {
	cid, ok := ParseChannelID(channelURL)
	if !ok {
		handle, hasHandle := ParseChannelHandle(channelURL)
		if !hasHandle {
			return nil
		}
		cid, ok = resolveChannelHandle(ctx, handle)
		if !ok {
			return nil
		}
	}
	uploads, ok := uploadsPlaylistID(ctx, cid)
	if !ok {
		return nil
	}
	return playlistVideoIDs(ctx, uploads, limit)
}

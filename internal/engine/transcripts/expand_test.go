package transcripts

import (
	"context"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

func TestExpandDedupAcrossInputs(t *testing.T) {
	engine.Init(engine.Config{})

	res := Expand(context.Background(), []string{
		"dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/abcABC12345",
	}, "", "", 50)

	want := []string{"dQw4w9WgXcQ", "abcABC12345"}
	if len(res.VideoIDs) != len(want) {
		t.Fatalf("got %d ids %v, want %v", len(res.VideoIDs), res.VideoIDs, want)
	}
	for i, id := range want {
		if res.VideoIDs[i] != id {
			t.Errorf("VideoIDs[%d] = %q, want %q", i, res.VideoIDs[i], id)
		}
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestExpandUnrecognizedURL(t *testing.T) {
	engine.Init(engine.Config{})

	res := Expand(context.Background(), []string{
		"https://www.google.com/search?q=cats",
		"https://youtu.be/abcABC12345",
	}, "", "", 50)

	if len(res.VideoIDs) != 1 || res.VideoIDs[0] != "abcABC12345" {
		t.Errorf("VideoIDs = %v, want [abcABC12345]", res.VideoIDs)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "https://www.google.com/search?q=cats") {
		t.Errorf("error %q does not name the entry", res.Errors[0])
	}
}

// Playlist/channel-shaped entries in the plain urls list are accepted
// silently but produce no identifiers.
func TestExpandPlaylistShapedEntryInURLs(t *testing.T) {
	engine.Init(engine.Config{})

	res := Expand(context.Background(), []string{
		"https://www.youtube.com/playlist?list=PLabc123",
		"https://www.youtube.com/@somehandle",
	}, "", "", 50)

	if len(res.VideoIDs) != 0 {
		t.Errorf("VideoIDs = %v, want none", res.VideoIDs)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors = %v, want none", res.Errors)
	}
}

func TestExpandRequiresCredential(t *testing.T) {
	engine.Init(engine.Config{}) // no API key

	res := Expand(context.Background(), nil,
		"https://www.youtube.com/playlist?list=PLabc123",
		"https://www.youtube.com/@somehandle", 50)

	if len(res.VideoIDs) != 0 {
		t.Errorf("VideoIDs = %v, want none", res.VideoIDs)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected two credential errors, got %v", res.Errors)
	}
	for _, e := range res.Errors {
		if !strings.Contains(e, "YOUTUBE_API_KEY") {
			t.Errorf("error %q does not mention the credential", e)
		}
	}
}

func TestExpandPlaylistAndChannel(t *testing.T) {
	engine.Init(engine.Config{YouTubeAPIKey: "test-key"})

	origPlaylist, origUploads, origHandle := playlistVideoIDs, uploadsPlaylistID, resolveChannelHandle
	defer func() {
		playlistVideoIDs, uploadsPlaylistID, resolveChannelHandle = origPlaylist, origUploads, origHandle
	}()

	playlistVideoIDs = func(_ context.Context, playlistID string, limit int) []string {
		switch playlistID {
		case "PLdirect":
			return []string{"aaaaaaaaaaa", "bbbbbbbbbbb"}
		case "UUuploads":
			return []string{"bbbbbbbbbbb", "ccccccccccc"}
		}
		return nil
	}
	uploadsPlaylistID = func(_ context.Context, channelID string) (string, bool) {
		if channelID == "UCresolved" {
			return "UUuploads", true
		}
		return "", false
	}
	resolveChannelHandle = func(_ context.Context, handle string) (string, bool) {
		if handle == "somehandle" {
			return "UCresolved", true
		}
		return "", false
	}

	res := Expand(context.Background(),
		[]string{"https://youtu.be/aaaaaaaaaaa"},
		"https://www.youtube.com/playlist?list=PLdirect",
		"https://www.youtube.com/@somehandle", 50)

	// First-seen order across urls, playlist, channel; duplicates dropped.
	want := []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}
	if len(res.VideoIDs) != len(want) {
		t.Fatalf("VideoIDs = %v, want %v", res.VideoIDs, want)
	}
	for i, id := range want {
		if res.VideoIDs[i] != id {
			t.Errorf("VideoIDs[%d] = %q, want %q", i, res.VideoIDs[i], id)
		}
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestExpandUnresolvableChannel(t *testing.T) {
	engine.Init(engine.Config{YouTubeAPIKey: "test-key"})

	origHandle := resolveChannelHandle
	defer func() { resolveChannelHandle = origHandle }()
	resolveChannelHandle = func(_ context.Context, _ string) (string, bool) { return "", false }

	res := Expand(context.Background(), nil, "", "https://www.youtube.com/@ghost", 50)
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "Could not resolve channel videos") {
		t.Errorf("Errors = %v, want could-not-resolve error", res.Errors)
	}
}

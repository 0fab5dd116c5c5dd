package transcripts

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// URL/identifier parsing. All parsers are pure; only ParseVideoID reports
// an error for input that matches no rule.

// videoIDPatterns are tried in order against the trimmed input.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:[?&]v=|v=)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:be/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:shorts/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`^([0-9A-Za-z_-]{11})$`),
}

var (
	playlistIDRe    = regexp.MustCompile(`[?&]list=([0-9A-Za-z_-]+)`)
	channelIDRe     = regexp.MustCompile(`/channel/(UC[0-9A-Za-z_-]{22})`)
	channelHandleRe = regexp.MustCompile(`/@([A-Za-z0-9._-]+)`)
)

// ParseVideoID extracts the 11-character video ID from a URL, or returns
// the ID itself if given bare. Fails with KindInvalidInput naming the
// offending input when no rule matches.
func ParseVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", engine.Errorf(engine.KindInvalidInput, "URL must be a non-empty string")
	}
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	return "", engine.Errorf(engine.KindInvalidInput, "could not extract a valid YouTube video ID from: %s", input)
}

// ParsePlaylistID extracts a list= query parameter.
func ParsePlaylistID(input string) (string, bool) {
	if m := playlistIDRe.FindStringSubmatch(input); m != nil {
		return m[1], true
	}
	return "", false
}

// ParseChannelID extracts a /channel/UC... path segment.
func ParseChannelID(input string) (string, bool) {
	if m := channelIDRe.FindStringSubmatch(input); m != nil {
		return m[1], true
	}
	return "", false
}

// ParseChannelHandle extracts a /@handle path segment.
func ParseChannelHandle(input string) (string, bool) {
	if m := channelHandleRe.FindStringSubmatch(input); m != nil {
		return m[1], true
	}
	return "", false
}

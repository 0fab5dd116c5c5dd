package transcripts

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Normalize converts timed segments into plain text, one line per segment.
// Segments with blank text are dropped. With timestamps enabled each line
// is prefixed with [MM:SS] from the segment's start time; the minute count
// is not wrapped at 60.
func Normalize(segments []engine.TranscriptSegment, includeTimestamps bool) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if includeTimestamps {
			start := seg.Start
			if start < 0 {
				start = 0
			}
			minutes := int(start) / 60
			seconds := int(start) % 60
			lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", minutes, seconds, text))
		} else {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

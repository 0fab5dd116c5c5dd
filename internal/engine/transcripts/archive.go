package transcripts

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
)

// Network seams, replaceable in tests.
var (
	fetchTranscript = sources.FetchTranscript
	fetchTitle      = sources.FetchTitle
)

// maxFilenameLen caps sanitized archive entry base names.
const maxFilenameLen = 120

// filenameStripper removes characters that are unsafe in filenames.
var filenameStripper = strings.NewReplacer(
	`\`, "", `/`, "", `:`, "", `*`, "", `?`, "", `"`, "", `<`, "", `>`, "", `|`, "",
)

// SanitizeFilename turns a video title into a filesystem-safe base name.
// Falls back to "transcript" when nothing survives cleaning.
func SanitizeFilename(name string) string {
	cleaned := strings.TrimSpace(filenameStripper.Replace(name))
	if cleaned == "" {
		cleaned = "transcript"
	}
	return engine.TruncateRunes(cleaned, maxFilenameLen, "")
}

// UniqueName deduplicates base against already-used names in the current
// archive build. The first use is unsuffixed; later uses get " (2)",
// " (3)", and so on. The counter map is scoped to one build.
func UniqueName(base string, used map[string]int) string {
	if _, ok := used[base]; !ok {
		used[base] = 1
		return base
	}
	used[base]++
	return fmt.Sprintf("%s (%d)", base, used[base])
}

// BuildArchive fetches and normalizes transcripts for the given video IDs
// and packages them as a zip archive, one text file per video. Per-video
// failures never abort the batch; they are collected together with the
// expansion errors into a trailing errors_report.txt entry.
func BuildArchive(ctx context.Context, videoIDs, expansionErrors []string, languageCode string, includeTimestamps bool) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	usedNames := make(map[string]int)
	var errs []string

	for _, vid := range videoIDs {
		segs, _, err := fetchTranscript(ctx, vid, languageCode)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", vid, err))
			continue
		}
		text := Normalize(segs, includeTimestamps)

		title, ok := fetchTitle(ctx, vid)
		if !ok {
			title = vid
		}
		name := UniqueName(SanitizeFilename(title), usedNames)

		w, err := zw.Create(name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("create archive entry: %w", err)
		}
		if _, err := w.Write([]byte(text)); err != nil {
			return nil, fmt.Errorf("write archive entry: %w", err)
		}
	}

	for _, e := range expansionErrors {
		errs = append(errs, "[expand] "+e)
	}
	if len(errs) > 0 {
		w, err := zw.Create("errors_report.txt")
		if err != nil {
			return nil, fmt.Errorf("create error report: %w", err)
		}
		if _, err := w.Write([]byte(strings.Join(errs, "\n"))); err != nil {
			return nil, fmt.Errorf("write error report: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

package webserver

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/engine/transcripts"
	"github.com/gin-gonic/gin"
)

// handleTranscript serves POST /api/transcript: single-video transcript
// retrieval with language listing and best-effort title lookup.
func handleTranscript(c *gin.Context) {
	engine.IncrTranscriptRequests()

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if detail, ok := validateTranscriptRequest(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
		return
	}

	videoID, err := transcripts.ParseVideoID(req.URL)
	if err != nil {
		slog.Error("invalid URL provided", slog.String("url", req.URL))
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()
	languages := sources.ListLanguages(ctx, videoID)

	segments, usedLanguage, err := sources.FetchTranscript(ctx, videoID, req.Language)
	if err != nil {
		slog.Error("error while fetching transcript", slog.String("id", videoID), slog.Any("err", err))
		status := http.StatusNotFound
		if !engine.IsNotFound(err) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"detail": err.Error()})
		return
	}

	var title *string
	if t, ok := sources.FetchTitle(ctx, videoID); ok {
		title = &t
	}

	c.JSON(http.StatusOK, TranscriptResponse{
		Transcript:         transcripts.Normalize(segments, req.IncludeTimestamps),
		LanguageUsed:       usedLanguage,
		AvailableLanguages: languages,
		VideoTitle:         title,
	})
}

// validateTranscriptRequest checks the request once at the boundary:
// url must be a well-formed absolute URL, language (if set) 2-10 chars.
// A blank language is treated as unset.
func validateTranscriptRequest(req *TranscriptRequest) (string, bool) {
	if strings.TrimSpace(req.URL) == "" {
		return "url is required", false
	}
	u, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "url must be a valid URL", false
	}
	req.Language = strings.TrimSpace(req.Language)
	if req.Language != "" && (len(req.Language) < 2 || len(req.Language) > 10) {
		return "language must be 2-10 characters", false
	}
	return "", true
}

package webserver

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/transcripts"
	"github.com/gin-gonic/gin"
)

// noVideosDetail is returned when a bulk request resolves zero videos.
const noVideosDetail = "No videos to process. Provide valid video URLs or set YOUTUBE_API_KEY for playlist/channel expansion."

// handleBulkTranscripts serves POST /api/bulk-transcripts: expands the
// mixed inputs into video IDs and returns a zip archive with one text
// file per video plus an error report when anything failed.
func handleBulkTranscripts(c *gin.Context) {
	engine.IncrBulkRequests()

	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = engine.Cfg.BulkDefaultLimit
	}
	req.Language = strings.TrimSpace(req.Language)

	slog.Info("bulk request",
		slog.Int("urls", len(req.URLs)),
		slog.String("playlist", req.PlaylistURL),
		slog.String("channel", req.ChannelURL),
		slog.Int("limit", req.Limit))

	// The batch runs on a background context: once accepted it is not
	// aborted by a client disconnect.
	ctx := context.Background()

	res := transcripts.Expand(ctx, req.URLs, req.PlaylistURL, req.ChannelURL, req.Limit)
	if len(res.Errors) > 0 {
		slog.Warn("expansion errors", slog.Any("errors", res.Errors))
	}
	if len(res.VideoIDs) == 0 {
		c.JSON(http.StatusBadRequest, BulkErrorResponse{
			Detail:          noVideosDetail,
			ExpansionErrors: res.Errors,
		})
		return
	}

	archive, err := transcripts.BuildArchive(ctx, res.VideoIDs, res.Errors, req.Language, req.IncludeTimestamps)
	if err != nil {
		slog.Error("archive build failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to build archive"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transcripts.zip"`)
	c.Data(http.StatusOK, "application/zip", archive)
}

// Package webserver wires the HTTP surface: the transcript API, the
// metrics endpoint, and optional static frontend hosting.
package webserver

import (
	"net/http"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/gin-gonic/gin"
)

// Register attaches middleware and all routes to the router.
func Register(r *gin.Engine) {
	r.Use(RequestLogger(), CORS())

	r.POST("/api/transcript", handleTranscript)
	r.POST("/api/bulk-transcripts", handleBulkTranscripts)
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, engine.FormatMetrics())
	})

	registerStatic(r)
}

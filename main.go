// go_transcript — YouTube transcript web service.
//
// Given a video URL it returns the transcript text (optionally with
// timestamps); a bulk mode expands playlists/channels/URL lists into
// per-video transcripts packaged as a zip archive.
//
// Single binary: HTTP API plus optional static frontend hosting.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/webserver"
	"github.com/gin-gonic/gin"
)

var port = env.Str("PORT", "8000")

func main() {
	initEngine()

	slog.Info("starting go_transcript",
		slog.String("port", port),
		slog.Bool("api_key_loaded", engine.HasAPIKey()),
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	webserver.Register(router)

	if err := router.Run(":" + port); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 10*time.Second)

	// The credential is checked under two alternate names; without one,
	// title lookup degrades to oEmbed and playlist/channel expansion is
	// disabled.
	apiKey := env.Str("YOUTUBE_API_KEY", "")
	if apiKey == "" {
		apiKey = env.Str("YT_API_KEY", "")
	}

	engine.Init(engine.Config{
		YouTubeAPIKey:    apiKey,
		FetchTimeout:     fetchTimeout,
		OEmbedTimeout:    env.Duration("OEMBED_TIMEOUT", 8*time.Second),
		BulkDefaultLimit: env.Int("BULK_DEFAULT_LIMIT", 50),
		StaticDir:        env.Str("STATIC_DIR", "./frontend"),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	})
}

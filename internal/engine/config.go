package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey    string // Data API v3 key; empty disables playlist/channel expansion
	FetchTimeout     time.Duration
	OEmbedTimeout    time.Duration
	BulkDefaultLimit int
	StaticDir        string
	HTTPClient       *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, transcripts).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.OEmbedTimeout <= 0 {
		c.OEmbedTimeout = 8 * time.Second
	}
	if c.BulkDefaultLimit <= 0 {
		c.BulkDefaultLimit = 50
	}
	cfg = c
	Cfg = &cfg
}

// HasAPIKey reports whether a Data API credential is configured.
// Without one, playlist/channel expansion is disabled and title lookup
// degrades to the public oEmbed endpoint.
func HasAPIKey() bool {
	return cfg.YouTubeAPIKey != ""
}

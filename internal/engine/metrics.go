package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	BulkRequests       atomic.Int64
	InnertubeRequests  atomic.Int64
	TimedtextRequests  atomic.Int64
	DataAPIRequests    atomic.Int64
	OEmbedRequests     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"bulk_requests":       metrics.BulkRequests.Load(),
		"innertube_requests":  metrics.InnertubeRequests.Load(),
		"timedtext_requests":  metrics.TimedtextRequests.Load(),
		"data_api_requests":   metrics.DataAPIRequests.Load(),
		"oembed_requests":     metrics.OEmbedRequests.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_requests", "bulk_requests",
		"innertube_requests", "timedtext_requests",
		"data_api_requests", "oembed_requests",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for webserver and sources sub-packages.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrBulkRequests()       { metrics.BulkRequests.Add(1) }
func IncrInnertubeRequests()  { metrics.InnertubeRequests.Add(1) }
func IncrTimedtextRequests()  { metrics.TimedtextRequests.Add(1) }
func IncrDataAPIRequests()    { metrics.DataAPIRequests.Add(1) }
func IncrOEmbedRequests()     { metrics.OEmbedRequests.Add(1) }

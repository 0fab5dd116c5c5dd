package webserver

import "github.com/anatolykoptev/go_transcript/internal/engine"

// --- Request types ---

// TranscriptRequest is the body of POST /api/transcript.
type TranscriptRequest struct {
	URL               string `json:"url"`
	Language          string `json:"language,omitempty"`           // optional ISO 639-1 code, 2-10 chars
	IncludeTimestamps bool   `json:"include_timestamps,omitempty"` // prefix lines with [MM:SS]
}

// BulkRequest is the body of POST /api/bulk-transcripts. All fields are
// optional; at least one of URLs, PlaylistURL, ChannelURL should be set
// for the request to resolve any videos.
type BulkRequest struct {
	URLs              []string `json:"urls"`
	PlaylistURL       string   `json:"playlist_url"`
	ChannelURL        string   `json:"channel_url"`
	Limit             int      `json:"limit"` // max videos from playlist/channel expansion, default 50
	Language          string   `json:"language"`
	IncludeTimestamps bool     `json:"include_timestamps"`
}

// --- Response types ---

// TranscriptResponse is the 200 body of POST /api/transcript.
type TranscriptResponse struct {
	Transcript         string                  `json:"transcript"`
	LanguageUsed       string                  `json:"language_used"`
	AvailableLanguages []engine.LanguageOption `json:"available_languages"`
	VideoTitle         *string                 `json:"video_title"`
}

// BulkErrorResponse is the 400 body of POST /api/bulk-transcripts when no
// videos could be resolved at all.
type BulkErrorResponse struct {
	Detail          string   `json:"detail"`
	ExpansionErrors []string `json:"expansion_errors"`
}

package webserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg engine.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine.Init(cfg)
	r := gin.New()
	Register(r)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranscriptRequestValidation(t *testing.T) {
	r := newTestRouter(t, engine.Config{})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"url": `},
		{name: "missing url", body: `{}`},
		{name: "blank url", body: `{"url": "   "}`},
		{name: "not a URL", body: `{"url": "dQw4w9WgXcQ"}`},
		{name: "language too short", body: `{"url": "https://youtu.be/dQw4w9WgXcQ", "language": "e"}`},
		{name: "language too long", body: `{"url": "https://youtu.be/dQw4w9WgXcQ", "language": "en-US-extended"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/transcript", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTranscriptUnparseableURL(t *testing.T) {
	r := newTestRouter(t, engine.Config{})

	w := postJSON(r, "/api/transcript", `{"url": "https://example.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "https://example.com")
}

func TestBulkNoResolvableVideos(t *testing.T) {
	r := newTestRouter(t, engine.Config{})

	w := postJSON(r, "/api/bulk-transcripts", `{"urls": ["https://www.google.com/search?q=cats"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body BulkErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "No videos to process")
	require.Len(t, body.ExpansionErrors, 1)
	assert.Equal(t, "Unrecognized URL (not a video/playlist/channel): https://www.google.com/search?q=cats", body.ExpansionErrors[0])
}

func TestBulkPlaylistWithoutCredential(t *testing.T) {
	r := newTestRouter(t, engine.Config{}) // no API key

	w := postJSON(r, "/api/bulk-transcripts", `{"playlist_url": "https://www.youtube.com/playlist?list=PLabc123"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body BulkErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.ExpansionErrors, 1)
	assert.Contains(t, body.ExpansionErrors[0], "Playlist expansion requires YOUTUBE_API_KEY")
}

func TestBulkEmptyBody(t *testing.T) {
	r := newTestRouter(t, engine.Config{})

	w := postJSON(r, "/api/bulk-transcripts", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body BulkErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// No inputs at all: zero ids, zero expansion errors, still a 400.
	assert.Empty(t, body.ExpansionErrors)
	assert.NotNil(t, body.ExpansionErrors)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, engine.Config{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transcript_requests ")
	assert.Contains(t, w.Body.String(), "bulk_requests ")
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, engine.Config{})

	req := httptest.NewRequest(http.MethodOptions, "/api/transcript", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

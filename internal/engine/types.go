package engine

// --- Transcript types ---

// TranscriptSegment is one timed caption line as returned by the provider.
// Consumed, never mutated, by the normalizer.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds
	Duration float64 `json:"duration"` // seconds
}

// LanguageOption describes one available transcript track for a video.
type LanguageOption struct {
	Language     string `json:"language"` // human-readable display name
	LanguageCode string `json:"language_code"`
	IsGenerated  bool   `json:"is_generated"` // auto-generated (ASR) track
}

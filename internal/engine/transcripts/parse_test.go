package transcripts

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL with extra params",
			input: "https://www.youtube.com/watch?t=30&v=dQw4w9WgXcQ&feature=share",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "embed URL",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "shorts URL",
			input: "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "surrounding whitespace",
			input: "  https://youtu.be/dQw4w9WgXcQ  ",
			want:  "dQw4w9WgXcQ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.input)
			if err != nil {
				t.Fatalf("ParseVideoID(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVideoIDInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unrelated URL", input: "https://example.com"},
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "too short token", input: "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVideoID(tt.input)
			if err == nil {
				t.Fatalf("ParseVideoID(%q) expected error", tt.input)
			}
			if engine.KindOf(err) != engine.KindInvalidInput {
				t.Errorf("ParseVideoID(%q) kind = %v, want KindInvalidInput", tt.input, engine.KindOf(err))
			}
			if tt.input != "" && strings.TrimSpace(tt.input) != "" && !strings.Contains(err.Error(), tt.input) {
				t.Errorf("error %q does not name the offending input", err.Error())
			}
		})
	}
}

func TestParsePlaylistID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "playlist URL",
			input: "https://www.youtube.com/playlist?list=PLabc123XYZ_-456",
			want:  "PLabc123XYZ_-456",
			ok:    true,
		},
		{
			name:  "watch URL with list param",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123XYZ",
			want:  "PLabc123XYZ",
			ok:    true,
		},
		{
			name:  "no list param",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			ok:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePlaylistID(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParsePlaylistID(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseChannelID(t *testing.T) {
	id, ok := ParseChannelID("https://www.youtube.com/channel/UCabcdefghij1234567890AB/videos")
	if !ok || id != "UCabcdefghij1234567890AB" {
		t.Errorf("ParseChannelID = (%q, %v)", id, ok)
	}
	if _, ok := ParseChannelID("https://www.youtube.com/@somehandle"); ok {
		t.Error("ParseChannelID matched a handle URL")
	}
}

func TestParseChannelHandle(t *testing.T) {
	h, ok := ParseChannelHandle("https://www.youtube.com/@Some.Handle_1-2/videos")
	if !ok || h != "Some.Handle_1-2" {
		t.Errorf("ParseChannelHandle = (%q, %v)", h, ok)
	}
	if _, ok := ParseChannelHandle("https://www.youtube.com/watch?v=dQw4w9WgXcQ"); ok {
		t.Error("ParseChannelHandle matched a watch URL")
	}
}

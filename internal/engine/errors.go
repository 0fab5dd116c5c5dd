package engine

import (
	"errors"
	"fmt"
)

// Kind classifies user-facing failures. Provider-specific errors are
// collapsed into this closed set before they reach a handler.
type Kind int

const (
	// KindInternal is anything not covered by the taxonomy below.
	KindInternal Kind = iota
	// KindInvalidInput — malformed or unparseable URL/identifier.
	KindInvalidInput
	// KindInvalidVideoID — provider rejected the video identifier.
	KindInvalidVideoID
	// KindVideoUnavailable — the video exists but cannot be accessed.
	KindVideoUnavailable
	// KindNoTranscript — no transcript track exists or could be retrieved.
	KindNoTranscript
)

// Error is a tagged user-facing error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds a tagged Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind from err, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err maps to an HTTP 404 for the single-video
// endpoint: the video or its transcript cannot be retrieved.
func IsNotFound(err error) bool {
	switch KindOf(err) {
	case KindInvalidVideoID, KindVideoUnavailable, KindNoTranscript:
		return true
	}
	return false
}

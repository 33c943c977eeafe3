// Package transcription provides interfaces and helpers for live speech-to-text.
package transcription

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when no speech recognition capability is present.
var ErrUnsupported = errors.New("transcription: speech recognition not supported")

// Options configures a recognition session.
type Options struct {
	// Locale is the recognition language tag, e.g. "en-US".
	Locale string

	// InterimResults requests non-final hypotheses.
	InterimResults bool

	// Continuous keeps the session open across pauses.
	Continuous bool
}

// Event is one recognition result.
type Event struct {
	// Alternatives holds candidate transcripts, best first. It may be empty.
	Alternatives []string

	// Final marks the result as finalized.
	Final bool
}

// Best returns the first alternative, if any.
func (e Event) Best() (string, bool) {
	if len(e.Alternatives) == 0 {
		return "", false
	}
	return e.Alternatives[0], true
}

// Recognizer is the speech recognition capability.
type Recognizer interface {
	// Start opens a session. The returned channel carries result events and is
	// closed when the session ends, which is the terminal end event.
	Start(ctx context.Context, opts Options) (<-chan Event, error)
}

// ProviderType identifies a recognizer backend.
type ProviderType string

const (
	ProviderCommand ProviderType = "command"
)

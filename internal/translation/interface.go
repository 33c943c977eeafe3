// Package translation provides interfaces and types for text translation services.
package translation

import (
	"context"
	"errors"
	"strings"

	"realtime-translator/internal/config"
)

var (
	// ErrEmptyInput is returned for blank text. It is a no-op, not a failure.
	ErrEmptyInput = errors.New("translation: empty input")

	// ErrEndpointFailure wraps a single endpoint's failure.
	ErrEndpointFailure = errors.New("translation: endpoint failed")

	// ErrAllEndpointsUnavailable is returned when no endpoint produced text.
	ErrAllEndpointsUnavailable = errors.New("translation: all endpoints unavailable")

	// ErrSuperseded marks the result of a request replaced by a newer one.
	ErrSuperseded = errors.New("translation: superseded by a newer request")
)

// Request is one translation invocation.
type Request struct {
	Text   string
	Source string
	Target string
}

// IsEmpty reports whether the request text is blank.
func (r Request) IsEmpty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// Payload builds the wire body sent to an endpoint.
func (r Request) Payload() Payload {
	source := r.Source
	if source == "" {
		source = config.AutoLanguage
	}
	return Payload{
		Q:      r.Text,
		Source: source,
		Target: r.Target,
		Format: config.PayloadFormat,
	}
}

// Payload is the JSON body of a translate call.
type Payload struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// Response is the JSON body returned by a translate endpoint.
type Response struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translator is the interface for all translation services.
type Translator interface {
	// Translate returns non-empty translated text or an error.
	Translate(ctx context.Context, req Request) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, req Request) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// OutcomeKind classifies the result of a controller invocation.
type OutcomeKind string

const (
	OutcomeEmpty      OutcomeKind = "empty"
	OutcomeSuccess    OutcomeKind = "success"
	OutcomeFailure    OutcomeKind = "failure"
	OutcomeSuperseded OutcomeKind = "superseded"
)

// Outcome is the result of one controller invocation.
type Outcome struct {
	Kind       OutcomeKind
	Text       string
	Err        error
	Generation uint64
}

// Applies reports whether the outcome may update visible state.
func (o Outcome) Applies() bool {
	return o.Kind != OutcomeSuperseded
}

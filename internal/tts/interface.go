// Package tts provides interfaces and shared helpers for text-to-speech output.
package tts

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when no speech synthesis capability is present.
var ErrUnsupported = errors.New("tts: speech synthesis not supported")

// Voice is one platform voice.
type Voice struct {
	Name string
	Lang string // Language tag, e.g. "en-US"
}

// Utterance is a single request to speak.
type Utterance struct {
	Text  string
	Voice *Voice // nil selects the platform default for Lang
	Lang  string
}

// Synthesizer is the speech output capability.
type Synthesizer interface {
	// Voices lists available voices in platform order.
	Voices(ctx context.Context) ([]Voice, error)

	// Speak starts speaking the utterance and returns without waiting for playback.
	Speak(ctx context.Context, u Utterance) error

	// Cancel stops the current utterance, if any.
	Cancel() error
}

// ProviderType identifies a synthesizer backend.
type ProviderType string

const (
	ProviderSay     ProviderType = "say"
	ProviderEspeak  ProviderType = "espeak-ng"
	ProviderCommand ProviderType = "command"
)

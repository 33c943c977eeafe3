package services

import (
	"context"
	"sync"

	"realtime-translator/internal/logger"
	"realtime-translator/internal/tts"
)

// SpeechBridge speaks text in a language, picking a matching platform voice.
type SpeechBridge struct {
	synth tts.Synthesizer

	mu     sync.Mutex
	voices []tts.Voice
	loaded bool
}

// NewSpeechBridge wraps synth. A nil synthesizer makes Speak report tts.ErrUnsupported.
func NewSpeechBridge(synth tts.Synthesizer) *SpeechBridge {
	return &SpeechBridge{synth: synth}
}

// Supported reports whether a synthesizer is present.
func (b *SpeechBridge) Supported() bool {
	return b != nil && b.synth != nil
}

// Speak cancels the current utterance and speaks text. Empty text is a no-op.
func (b *SpeechBridge) Speak(ctx context.Context, text, lang string) error {
	if text == "" {
		return nil
	}
	if !b.Supported() {
		return tts.ErrUnsupported
	}

	if err := b.synth.Cancel(); err != nil {
		logger.Debug("speech: cancel previous utterance: %v", err)
	}
	u := tts.BuildUtterance(text, lang, b.Voices(ctx))
	if u.Voice != nil {
		logger.Debug("speech: voice %q for %s", u.Voice.Name, lang)
	}
	return b.synth.Speak(ctx, u)
}

// Cancel stops the current utterance.
func (b *SpeechBridge) Cancel() error {
	if !b.Supported() {
		return nil
	}
	return b.synth.Cancel()
}

// Voices returns the platform voice list, loaded once.
func (b *SpeechBridge) Voices(ctx context.Context) []tts.Voice {
	if !b.Supported() {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loaded {
		return b.voices
	}

	voices, err := b.synth.Voices(ctx)
	if err != nil {
		// Retried on the next Speak; the default voice still works.
		logger.Debug("speech: list voices: %v", err)
		return nil
	}
	b.voices = voices
	b.loaded = true
	return voices
}

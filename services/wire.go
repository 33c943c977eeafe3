package services

import (
	"errors"
	"net/http"

	"realtime-translator/internal/debounce"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/storage"
	"realtime-translator/internal/transcription"
	"realtime-translator/internal/tts"
	"realtime-translator/models"
)

// Environment holds the platform capabilities a session runs against.
// Nil fields mean the capability is absent.
type Environment struct {
	Store       storage.Store
	HTTPClient  *http.Client
	Synthesizer tts.Synthesizer
	Recognizer  transcription.Recognizer
	Clipboard   Clipboard
	AfterFunc   debounce.AfterFunc
}

// NewSessionFromConfig builds the translator stack described by cfg and
// rehydrates history from env.Store.
func NewSessionFromConfig(cfg *models.Config, env Environment) *Session {
	history := NewHistoryStore(env.Store)
	history.Load()

	translator := NewFallbackTranslator(cfg.Endpoints, NewEndpointClient(env.HTTPClient))
	return NewSession(SessionOptions{
		Source:     cfg.DefaultSource,
		Target:     cfg.DefaultTarget,
		Auto:       cfg.AutoTranslate,
		Debounce:   cfg.DebounceDelay(),
		AfterFunc:  env.AfterFunc,
		Controller: NewTranslationController(translator, history),
		History:    history,
		Speech:     NewSpeechBridge(env.Synthesizer),
		Dictation:  NewDictationBridge(env.Recognizer),
		Clipboard:  env.Clipboard,
	})
}

// DetectSpeech resolves the platform synthesizer and recognizer from cfg.
// Missing capabilities are left nil and logged.
func DetectSpeech(cfg *models.Config) (tts.Synthesizer, transcription.Recognizer) {
	var synth tts.Synthesizer
	if s, err := NewSystemSynthesizer(cfg.Speech.SynthesizerCommand); err == nil {
		synth = s
		logger.Debug("speech output via %s", s.Provider())
	} else if !errors.Is(err, tts.ErrUnsupported) || cfg.Speech.SynthesizerCommand != "" {
		logger.Warn("speech output unavailable: %v", err)
	}

	var rec transcription.Recognizer
	if r, err := NewCommandRecognizer(cfg.Speech.RecognizerCommand); err == nil {
		rec = r
	} else if cfg.Speech.RecognizerCommand != "" {
		logger.Warn("dictation unavailable: %v", err)
	}
	return synth, rec
}

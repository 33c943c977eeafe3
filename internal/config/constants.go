// Package config provides centralized configuration and constants for the realtime-translator application.
package config

import "time"

// Auto-translate settings
const (
	// DebounceDelay is the quiescence window before typed input is translated.
	DebounceDelay = 500 * time.Millisecond

	// HistoryLimit caps the number of stored translation records.
	HistoryLimit = 50

	// HistoryStorageKey is the key holding the JSON history snapshot.
	HistoryStorageKey = "translator_history_v1"
)

// HTTP client settings
const (
	HTTPTimeout             = 30 * time.Second
	HTTPMaxIdleConns        = 10
	HTTPMaxIdleConnsPerHost = 5
	HTTPIdleConnTimeout     = 90 * time.Second

	// MaxResponseBytes bounds how much of an endpoint response is read.
	MaxResponseBytes = 1 << 20
)

// Translation endpoints, tried in order
const (
	PrimaryEndpoint   = "https://libretranslate.com/translate"
	SecondaryEndpoint = "https://translate.argosopentech.com/translate"
)

// DefaultEndpoints returns the ordered fallback list of translation endpoints.
func DefaultEndpoints() []string {
	return []string{PrimaryEndpoint, SecondaryEndpoint}
}

// Request payload settings
const (
	AutoLanguage  = "auto"
	PayloadFormat = "text"
)

// Default languages
const (
	DefaultSourceLang = AutoLanguage
	DefaultTargetLang = "en"

	// FallbackSwapLang replaces "auto" when a swap would put it on the target side.
	FallbackSwapLang = "en"

	// FallbackRecognitionLocale is used for dictation when the source is "auto".
	FallbackRecognitionLocale = "en-US"
)

// User-visible messages
const (
	MessageUnavailable = "Online translation is unavailable right now. Please try again or use manual input."
	MessageNoDictation = "Speech recognition is not supported on this system."
	MessageNoSpeech    = "Speech output is not available on this system."
	MessageRestart     = "Saved settings take effect the next time the translator starts."
)

// Storage backends
const (
	StorageSQLite      = "sqlite"
	StoragePreferences = "preferences"
	StorageMemory      = "memory"
)

// Application identity
const (
	AppID   = "com.realtime-translator.app"
	AppName = "realtime-translator"
)

// Local control server
const (
	DefaultServerPort    = 8787
	ServerShutdownPeriod = 5 * time.Second
	ServerMaxConcurrent  = 8
	ServerSlotWait       = 300 * time.Millisecond
)

// Batch translation
const (
	DefaultBatchWorkers = 4
	MaxBatchWorkers     = 16
)

// Exec command timeouts (for os/exec calls)
const (
	ExecTimeoutVoices = 10 * time.Second // Listing platform voices
)

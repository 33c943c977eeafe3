// Package text holds the language table used for translation, dictation and speech.
package text

import (
	"strings"

	"realtime-translator/internal/config"
)

// Language is one entry of the language table.
type Language struct {
	Code   string // ISO 639-1 style code, or "auto"
	Name   string // Display name
	Locale string // Speech recognition locale
}

// languages is ordered the way selectors present them.
var languages = []Language{
	{Code: config.AutoLanguage, Name: "Detect language", Locale: config.FallbackRecognitionLocale},
	{Code: "en", Name: "English", Locale: "en-US"},
	{Code: "es", Name: "Spanish", Locale: "es-ES"},
	{Code: "fr", Name: "French", Locale: "fr-FR"},
	{Code: "de", Name: "German", Locale: "de-DE"},
	{Code: "it", Name: "Italian", Locale: "it-IT"},
	{Code: "pt", Name: "Portuguese", Locale: "pt-PT"},
	{Code: "ru", Name: "Russian", Locale: "ru-RU"},
	{Code: "ja", Name: "Japanese", Locale: "ja-JP"},
	{Code: "ko", Name: "Korean", Locale: "ko-KR"},
	{Code: "zh", Name: "Chinese (Simplified)", Locale: "zh-CN"},
	{Code: "ar", Name: "Arabic", Locale: "ar-SA"},
	{Code: "hi", Name: "Hindi", Locale: "hi-IN"},
}

// SourceLanguages returns every language usable as a source, "auto" first.
func SourceLanguages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// TargetLanguages returns the source table without the "auto" sentinel.
func TargetLanguages() []Language {
	out := make([]Language, 0, len(languages)-1)
	for _, l := range languages {
		if l.Code != config.AutoLanguage {
			out = append(out, l)
		}
	}
	return out
}

// Lookup returns the table entry for code.
func Lookup(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// GetLanguageName returns the human-readable name for a language code.
// If the code is not found, it returns the code itself.
func GetLanguageName(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Name
	}
	return code
}

// IsValidSourceLanguage checks if a language code is a valid source language.
func IsValidSourceLanguage(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// IsValidTargetLanguage checks if a language code is a valid target language.
func IsValidTargetLanguage(code string) bool {
	return code != config.AutoLanguage && IsValidSourceLanguage(code)
}

// Swap exchanges source and target. "auto" cannot become a target, so an
// "auto" on either side is replaced by the fallback language when it moves.
func Swap(source, target string) (newSource, newTarget string) {
	newSource = target
	if newSource == config.AutoLanguage {
		newSource = config.FallbackSwapLang
	}
	newTarget = source
	if newTarget == config.AutoLanguage {
		newTarget = config.FallbackSwapLang
	}
	return newSource, newTarget
}

// RecognitionLocale returns the dictation locale for a source language.
func RecognitionLocale(source string) string {
	if l, ok := Lookup(source); ok && source != config.AutoLanguage {
		return l.Locale
	}
	if source == "" || source == config.AutoLanguage {
		return config.FallbackRecognitionLocale
	}
	return source + "-" + strings.ToUpper(source)
}

// SpeechLanguage returns the language tag used to speak text written in source.
func SpeechLanguage(source string) string {
	if source == "" || source == config.AutoLanguage {
		return config.FallbackSwapLang
	}
	return source
}

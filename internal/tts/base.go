package tts

import "strings"

// MatchVoice returns the first voice whose language tag starts with lang,
// compared case-insensitively. Order follows the platform voice list.
func MatchVoice(voices []Voice, lang string) (Voice, bool) {
	prefix := strings.ToLower(lang)
	if prefix == "" {
		return Voice{}, false
	}
	for _, v := range voices {
		if strings.HasPrefix(strings.ToLower(v.Lang), prefix) {
			return v, true
		}
	}
	return Voice{}, false
}

// BuildUtterance selects a voice for lang and sets the utterance language to
// the matched voice's tag, or to lang when nothing matches.
func BuildUtterance(text, lang string, voices []Voice) Utterance {
	u := Utterance{Text: text, Lang: lang}
	if v, ok := MatchVoice(voices, lang); ok {
		u.Voice = &v
		if v.Lang != "" {
			u.Lang = v.Lang
		}
	}
	return u
}

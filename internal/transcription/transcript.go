package transcription

import "strings"

// Transcript folds recognition events into live text. Finalized segments
// accumulate; the interim segment is replaced by each new interim result.
type Transcript struct {
	final   strings.Builder
	interim string
}

// Apply folds one event and reports whether the live text may have changed.
func (t *Transcript) Apply(e Event) bool {
	best, ok := e.Best()
	if !ok {
		return false
	}
	if e.Final {
		t.final.WriteString(best)
		t.final.WriteString(" ")
		t.interim = ""
		return true
	}
	t.interim = best
	return true
}

// Live returns finalized text plus the current interim segment, trimmed.
func (t *Transcript) Live() string {
	return strings.TrimSpace(t.final.String() + t.interim)
}

// Final returns only finalized text, trimmed.
func (t *Transcript) Final() string {
	return strings.TrimSpace(t.final.String())
}

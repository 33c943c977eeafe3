package models

import (
	"encoding/json"
	"time"
)

// TranslationRecord is one successful translation. Records are never mutated.
type TranslationRecord struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Timestamp int64  `json:"ts"` // Unix epoch milliseconds
}

// NewTranslationRecord stamps a record with the current time.
func NewTranslationRecord(input, output, source, target string) TranslationRecord {
	return TranslationRecord{
		Input:     input,
		Output:    output,
		Source:    source,
		Target:    target,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Time returns the record timestamp as a time.Time.
func (r TranslationRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// HistoryLog is newest-first. Insertion order is the sort order.
type HistoryLog []TranslationRecord

// Prepend returns a new log with r at index 0, truncated to limit.
// The receiver is left unchanged.
func (h HistoryLog) Prepend(r TranslationRecord, limit int) HistoryLog {
	n := len(h) + 1
	if limit > 0 && n > limit {
		n = limit
	}
	out := make(HistoryLog, 0, n)
	out = append(out, r)
	for _, rec := range h {
		if len(out) == n {
			break
		}
		out = append(out, rec)
	}
	return out
}

// Truncate returns at most limit records, keeping the newest.
func (h HistoryLog) Truncate(limit int) HistoryLog {
	if limit <= 0 || len(h) <= limit {
		return h
	}
	return h[:limit]
}

// Marshal serializes the log as a JSON array. A nil log encodes as [].
func (h HistoryLog) Marshal() (string, error) {
	if h == nil {
		h = HistoryLog{}
	}
	data, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseHistory decodes a JSON snapshot.
func ParseHistory(raw string) (HistoryLog, error) {
	var h HistoryLog
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, err
	}
	return h, nil
}

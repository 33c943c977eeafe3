package services

import (
	"context"

	"github.com/google/uuid"

	"realtime-translator/internal/logger"
	"realtime-translator/internal/transcription"
)

// DictationBridge opens recognition sessions and folds their events into text.
type DictationBridge struct {
	recognizer transcription.Recognizer
}

// NewDictationBridge wraps r. A nil recognizer makes Start report transcription.ErrUnsupported.
func NewDictationBridge(r transcription.Recognizer) *DictationBridge {
	return &DictationBridge{recognizer: r}
}

// Supported reports whether a recognizer is present.
func (d *DictationBridge) Supported() bool {
	return d != nil && d.recognizer != nil
}

// Start opens a continuous session with interim results in locale.
func (d *DictationBridge) Start(ctx context.Context, locale string) (*Dictation, error) {
	if !d.Supported() {
		return nil, transcription.ErrUnsupported
	}
	events, err := d.recognizer.Start(ctx, transcription.Options{
		Locale:         locale,
		InterimResults: true,
		Continuous:     true,
	})
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	logger.With("dictation_id", id).Debug("dictation started (%s)", locale)
	return &Dictation{ID: id, events: events}, nil
}

// Dictation is one open recognition session.
type Dictation struct {
	ID string

	events     <-chan transcription.Event
	transcript transcription.Transcript
}

// Run consumes events until the session ends, calling onLive with the live
// transcript after each change. It returns the finalized transcript.
func (d *Dictation) Run(onLive func(string)) string {
	for e := range d.events {
		if d.transcript.Apply(e) && onLive != nil {
			onLive(d.transcript.Live())
		}
	}
	final := d.transcript.Final()
	logger.With("dictation_id", d.ID).Debug("dictation ended, %d chars final", len(final))
	return final
}

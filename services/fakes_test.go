package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"realtime-translator/internal/transcription"
	"realtime-translator/internal/translation"
	"realtime-translator/internal/tts"
)

// newEndpoint starts a fake translate endpoint that records payloads.
func newEndpoint(t *testing.T, status int, body string) (*httptest.Server, *[]translation.Payload) {
	t.Helper()
	var mu sync.Mutex
	var payloads []translation.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p translation.Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		mu.Lock()
		payloads = append(payloads, p)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &payloads
}

// deadEndpoint returns a URL that refuses connections.
func deadEndpoint(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

// dictTranslator translates from a fixed table and counts calls.
type dictTranslator struct {
	mu    sync.Mutex
	words map[string]string
	calls []translation.Request
	err   error
}

func newDictTranslator(words map[string]string) *dictTranslator {
	return &dictTranslator{words: words}
}

func (d *dictTranslator) Translate(ctx context.Context, req translation.Request) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, req)
	if d.err != nil {
		return "", d.err
	}
	if out, ok := d.words[req.Text]; ok {
		return out, nil
	}
	return req.Text + "-" + req.Target, nil
}

func (d *dictTranslator) Calls() []translation.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]translation.Request, len(d.calls))
	copy(out, d.calls)
	return out
}

func (d *dictTranslator) SetErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// slowTranslator holds each request for delay, giving up early when the
// request context is cancelled.
type slowTranslator struct {
	delay time.Duration
	next  translation.Translator
}

func (s slowTranslator) Translate(ctx context.Context, req translation.Request) (string, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return s.next.Translate(ctx, req)
}

// gatedTranslator blocks each request until the test releases it. It ignores
// cancellation so late responses can be simulated.
type gatedTranslator struct {
	mu       sync.Mutex
	gates    map[string]chan string
	canceled map[string]bool
	started  chan string
}

func newGatedTranslator() *gatedTranslator {
	return &gatedTranslator{
		gates:    make(map[string]chan string),
		canceled: make(map[string]bool),
		started:  make(chan string, 8),
	}
}

func (g *gatedTranslator) gate(text string) chan string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[text]
	if !ok {
		ch = make(chan string, 1)
		g.gates[text] = ch
	}
	return ch
}

func (g *gatedTranslator) Translate(ctx context.Context, req translation.Request) (string, error) {
	g.started <- req.Text
	out := <-g.gate(req.Text)
	g.mu.Lock()
	g.canceled[req.Text] = ctx.Err() != nil
	g.mu.Unlock()
	return out, nil
}

func (g *gatedTranslator) release(text, out string) {
	g.gate(text) <- out
}

func (g *gatedTranslator) wasCanceled(text string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canceled[text]
}

// fakeSynth records utterances.
type fakeSynth struct {
	mu         sync.Mutex
	voices     []tts.Voice
	utterances []tts.Utterance
	cancels    int
}

func (f *fakeSynth) Voices(ctx context.Context) ([]tts.Voice, error) {
	return f.voices, nil
}

func (f *fakeSynth) Speak(ctx context.Context, u tts.Utterance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.utterances = append(f.utterances, u)
	return nil
}

func (f *fakeSynth) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

func (f *fakeSynth) Utterances() []tts.Utterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tts.Utterance(nil), f.utterances...)
}

// fakeRecognizer hands out a test-controlled event channel.
type fakeRecognizer struct {
	events chan transcription.Event
	opts   transcription.Options
}

func (f *fakeRecognizer) Start(ctx context.Context, opts transcription.Options) (<-chan transcription.Event, error) {
	f.opts = opts
	return f.events, nil
}

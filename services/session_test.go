package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"realtime-translator/internal/config"
	"realtime-translator/internal/debounce"
	"realtime-translator/internal/storage"
	"realtime-translator/internal/transcription"
	"realtime-translator/internal/translation"
	"realtime-translator/internal/tts"
	"realtime-translator/models"
)

type sessionFixture struct {
	session   *Session
	clock     *debounce.ManualClock
	history   *HistoryStore
	clipboard *MemoryClipboard
}

func newSessionFixture(t *testing.T, tr translation.Translator, opts SessionOptions) sessionFixture {
	t.Helper()
	f := sessionFixture{
		clock:     debounce.NewManualClock(),
		history:   NewHistoryStore(storage.NewMemoryStore()),
		clipboard: &MemoryClipboard{},
	}
	opts.AfterFunc = f.clock.AfterFunc
	opts.Controller = NewTranslationController(tr, f.history)
	opts.History = f.history
	if opts.Clipboard == nil {
		opts.Clipboard = f.clipboard
	}
	f.session = NewSession(opts)
	t.Cleanup(f.session.Close)
	return f
}

// settle advances past the debounce window and waits for the translation.
func (f sessionFixture) settle() {
	f.clock.Advance(config.DebounceDelay)
	f.session.Wait()
}

func autoOptions() SessionOptions {
	return SessionOptions{Source: "auto", Target: "es", Auto: true}
}

func TestSession_DebouncesTyping(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("h")
	f.clock.Advance(200 * time.Millisecond)
	s.SetInput("hel")
	f.clock.Advance(200 * time.Millisecond)
	s.SetInput("hello")
	if got := s.Snapshot().Phase; got != models.PhaseDebouncing {
		t.Errorf("Phase = %q, want debouncing", got)
	}

	f.clock.Advance(499 * time.Millisecond)
	s.Wait()
	if n := len(tr.Calls()); n != 0 {
		t.Fatalf("calls before window = %d, want 0", n)
	}

	f.clock.Advance(time.Millisecond)
	s.Wait()

	calls := tr.Calls()
	if len(calls) != 1 || calls[0].Text != "hello" {
		t.Fatalf("calls = %+v, want one call for 'hello'", calls)
	}
	st := s.Snapshot()
	if st.Output != "hola" {
		t.Errorf("Output = %q, want 'hola'", st.Output)
	}
	if st.Phase != models.PhaseIdle {
		t.Errorf("Phase = %q, want idle", st.Phase)
	}
	if st.Settled != "hello" {
		t.Errorf("Settled = %q, want 'hello'", st.Settled)
	}

	h := s.History()
	if len(h) != 1 || h[0].Input != "hello" || h[0].Output != "hola" || h[0].Source != "auto" || h[0].Target != "es" {
		t.Errorf("history = %+v", h)
	}
}

func TestSession_EmptyInputClearsOutput(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	f.settle()
	s.SetInput("")
	f.settle()

	st := s.Snapshot()
	if st.Output != "" {
		t.Errorf("Output = %q, want empty", st.Output)
	}
	if st.Phase != models.PhaseIdle {
		t.Errorf("Phase = %q, want idle", st.Phase)
	}
	if n := len(tr.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestSession_FailureSetsErrorAndNewInputClearsIt(t *testing.T) {
	tr := newDictTranslator(nil)
	tr.SetErr(fmt.Errorf("%w: both down", translation.ErrAllEndpointsUnavailable))
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	f.settle()

	st := s.Snapshot()
	if st.Phase != models.PhaseError {
		t.Errorf("Phase = %q, want error", st.Phase)
	}
	if st.Error != config.MessageUnavailable {
		t.Errorf("Error = %q, want unavailable message", st.Error)
	}
	if f.history.Len() != 0 {
		t.Errorf("history len = %d, want 0", f.history.Len())
	}

	s.SetInput("hello again")
	if got := s.Snapshot().Error; got != "" {
		t.Errorf("Error after new input = %q, want empty", got)
	}
}

func TestSession_DismissMessages(t *testing.T) {
	tr := newDictTranslator(nil)
	tr.SetErr(translation.ErrAllEndpointsUnavailable)
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	f.settle()
	s.DismissMessages()

	st := s.Snapshot()
	if st.Error != "" || st.Notice != "" {
		t.Errorf("messages = %q/%q, want both empty", st.Error, st.Notice)
	}
	if st.Phase != models.PhaseIdle {
		t.Errorf("Phase = %q, want idle", st.Phase)
	}
}

func TestSession_StaleResultDiscarded(t *testing.T) {
	g := newGatedTranslator()
	f := newSessionFixture(t, g, autoOptions())
	s := f.session

	s.SetInput("one")
	f.clock.Advance(config.DebounceDelay)
	<-g.started
	if !s.Snapshot().Loading() {
		t.Error("session should be loading")
	}

	s.SetInput("two")
	f.clock.Advance(config.DebounceDelay)
	<-g.started

	g.release("two", "dos")
	g.release("one", "uno")
	s.Wait()

	if got := s.Snapshot().Output; got != "dos" {
		t.Errorf("Output = %q, want 'dos'", got)
	}
	h := s.History()
	if len(h) != 1 || h[0].Output != "dos" {
		t.Errorf("history = %+v, want only 'dos'", h)
	}
}

func TestSession_BackToBackRequestsKeepOrder(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
	}{
		{"instant", 0},
		{"slow", 2 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				tr := slowTranslator{delay: tt.delay, next: newDictTranslator(nil)}
				f := newSessionFixture(t, tr, autoOptions())
				s := f.session

				s.SetInput("hello")
				f.clock.Advance(config.DebounceDelay)
				if err := s.SetTarget("fr"); err != nil {
					t.Fatalf("SetTarget() error = %v", err)
				}
				s.Wait()

				st := s.Snapshot()
				if st.Phase != models.PhaseIdle {
					t.Fatalf("run %d: Phase = %q, want idle", i, st.Phase)
				}
				if st.Output != "hello-fr" {
					t.Fatalf("run %d: Output = %q, want 'hello-fr'", i, st.Output)
				}
				h := s.History()
				if len(h) == 0 || h[0].Target != "fr" {
					t.Fatalf("run %d: history = %+v, want newest record for fr", i, h)
				}
				if !s.CanTranslate() {
					t.Fatalf("run %d: CanTranslate() = false after both requests finished", i)
				}
				f.session.Close()
			}
		})
	}
}

func TestSession_AutoOffWaitsForManual(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, SessionOptions{Source: "en", Target: "es"})
	s := f.session

	if s.CanTranslate() {
		t.Error("CanTranslate() should be false for empty input")
	}
	s.SetInput("hello")
	f.settle()
	if n := len(tr.Calls()); n != 0 {
		t.Fatalf("calls = %d, want 0 with auto off", n)
	}
	if got := s.Snapshot().Phase; got != models.PhaseIdle {
		t.Errorf("Phase = %q, want idle", got)
	}

	if !s.Translate() {
		t.Fatal("Translate() should start")
	}
	s.Wait()
	if got := s.Snapshot().Output; got != "hola" {
		t.Errorf("Output = %q, want 'hola'", got)
	}
}

func TestSession_ManualTranslateBypassesDebounce(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	s.Translate()
	s.Wait()
	if got := s.Snapshot().Output; got != "hola" {
		t.Errorf("Output = %q, want 'hola'", got)
	}

	// The pending window was consumed by the manual call.
	f.settle()
	if n := len(tr.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestSession_TranslateRefusedWhileLoading(t *testing.T) {
	g := newGatedTranslator()
	f := newSessionFixture(t, g, SessionOptions{Source: "en", Target: "es"})
	s := f.session

	s.SetInput("one")
	s.Translate()
	<-g.started
	if s.Translate() {
		t.Error("Translate() should be refused while loading")
	}
	g.release("one", "uno")
	s.Wait()
}

func TestSession_EnablingAutoTranslatesSettled(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, SessionOptions{Source: "en", Target: "es"})
	s := f.session

	s.SetInput("hello")
	f.settle()
	if on := s.ToggleAuto(); !on {
		t.Fatal("ToggleAuto() should enable auto")
	}
	s.Wait()
	if got := s.Snapshot().Output; got != "hola" {
		t.Errorf("Output = %q, want 'hola'", got)
	}
}

func TestSession_EnablingAutoWithBlankSettledClearsOutput(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, SessionOptions{Source: "en", Target: "es"})
	s := f.session

	s.SetInput("hello")
	s.Translate()
	s.Wait()
	s.SetInput("")
	f.settle()
	if got := s.Snapshot().Output; got != "hola" {
		t.Fatalf("Output = %q, want 'hola' while auto is off", got)
	}

	s.SetAuto(true)
	s.Wait()
	st := s.Snapshot()
	if st.Output != "" {
		t.Errorf("Output = %q, want empty", st.Output)
	}
	if st.Phase != models.PhaseIdle {
		t.Errorf("Phase = %q, want idle", st.Phase)
	}
	if n := len(tr.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestSession_LanguageChangeRetranslates(t *testing.T) {
	tr := newDictTranslator(nil)
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("cat")
	f.settle()
	if err := s.SetTarget("fr"); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	s.Wait()

	calls := tr.Calls()
	if len(calls) != 2 || calls[1].Target != "fr" {
		t.Fatalf("calls = %+v, want second call to fr", calls)
	}
	if got := s.Snapshot().Output; got != "cat-fr" {
		t.Errorf("Output = %q, want 'cat-fr'", got)
	}

	if err := s.SetSource("de"); err != nil {
		t.Fatalf("SetSource() error = %v", err)
	}
	s.Wait()
	if n := len(tr.Calls()); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}
}

func TestSession_RejectsInvalidLanguages(t *testing.T) {
	f := newSessionFixture(t, newDictTranslator(nil), autoOptions())
	if err := f.session.SetTarget("auto"); err == nil {
		t.Error("SetTarget(auto) should fail")
	}
	if err := f.session.SetSource("xx"); err == nil {
		t.Error("SetSource(xx) should fail")
	}
}

func TestSession_Swap(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, SessionOptions{Source: "auto", Target: "en", Auto: true})
	s := f.session

	s.SetInput("hello")
	f.settle()
	s.Swap()

	st := s.Snapshot()
	if st.Source != "en" || st.Target != "en" {
		t.Errorf("languages = %s/%s, want en/en", st.Source, st.Target)
	}
	if st.Input != "hola" || st.Output != "hello" {
		t.Errorf("texts = %q/%q, want swapped", st.Input, st.Output)
	}
	if n := len(tr.Calls()); n != 1 {
		t.Errorf("calls after swap = %d, want 1 (no direct translate)", n)
	}

	f.settle()
	calls := tr.Calls()
	if len(calls) != 2 || calls[1].Text != "hola" {
		t.Errorf("calls = %+v, want debounced 'hola'", calls)
	}
}

func TestSession_LoadHistoryItem(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	f.settle()
	s.SetTarget("fr")
	s.Wait()
	s.ClearInput()

	if err := s.LoadHistoryItem(1); err != nil {
		t.Fatalf("LoadHistoryItem() error = %v", err)
	}
	st := s.Snapshot()
	if st.Input != "hello" || st.Output != "hola" || st.Source != "auto" || st.Target != "es" {
		t.Errorf("state = %+v", st)
	}

	f.settle()
	if n := len(tr.Calls()); n != 2 {
		t.Errorf("calls = %d, want 2 (recall does not translate)", n)
	}
	if err := s.LoadHistoryItem(9); err == nil {
		t.Error("LoadHistoryItem(9) should fail")
	}
}

func TestSession_ClearHistory(t *testing.T) {
	tr := newDictTranslator(nil)
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	f.settle()
	if err := s.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	if n := len(s.History()); n != 0 {
		t.Errorf("history len = %d, want 0", n)
	}
}

func TestSession_ClearInputDropsInFlight(t *testing.T) {
	g := newGatedTranslator()
	f := newSessionFixture(t, g, autoOptions())
	s := f.session

	s.SetInput("one")
	f.clock.Advance(config.DebounceDelay)
	<-g.started
	s.ClearInput()
	g.release("one", "uno")
	s.Wait()

	if got := s.Snapshot().Output; got != "" {
		t.Errorf("Output = %q, want empty", got)
	}
}

func TestSession_OnChange(t *testing.T) {
	f := newSessionFixture(t, newDictTranslator(nil), autoOptions())
	var last models.AppState
	calls := 0
	f.session.OnChange(func(st models.AppState) {
		last = st
		calls++
	})

	f.session.SetInput("hi")
	if calls == 0 || last.Input != "hi" {
		t.Errorf("observer got %d calls, last input %q", calls, last.Input)
	}
}

func TestSession_Speak(t *testing.T) {
	synth := &fakeSynth{voices: []tts.Voice{
		{Name: "Alex", Lang: "en-US"},
		{Name: "Monica", Lang: "es-ES"},
		{Name: "Paulina", Lang: "es-MX"},
	}}
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	opts := autoOptions()
	opts.Speech = NewSpeechBridge(synth)
	f := newSessionFixture(t, tr, opts)
	s := f.session
	ctx := context.Background()

	if err := s.SpeakOutput(ctx); err != nil {
		t.Fatalf("SpeakOutput() error = %v", err)
	}
	if n := len(synth.Utterances()); n != 0 {
		t.Fatalf("empty output spoke %d utterances", n)
	}

	s.SetInput("hello")
	f.settle()
	s.SpeakOutput(ctx)
	s.SpeakInput(ctx)

	u := synth.Utterances()
	if len(u) != 2 {
		t.Fatalf("utterances = %d, want 2", len(u))
	}
	if u[0].Voice == nil || u[0].Voice.Name != "Monica" || u[0].Lang != "es-ES" {
		t.Errorf("output utterance = %+v, want Monica es-ES", u[0])
	}
	if u[1].Voice == nil || u[1].Voice.Name != "Alex" || u[1].Text != "hello" {
		t.Errorf("input utterance = %+v, want Alex 'hello'", u[1])
	}
	if synth.cancels < 2 {
		t.Errorf("cancels = %d, want >= 2", synth.cancels)
	}
}

func TestSession_SpeakUnsupported(t *testing.T) {
	f := newSessionFixture(t, newDictTranslator(nil), autoOptions())
	f.session.SetInput("hello")

	err := f.session.SpeakInput(context.Background())
	if !errors.Is(err, tts.ErrUnsupported) {
		t.Errorf("error = %v, want tts.ErrUnsupported", err)
	}
	if got := f.session.Snapshot().Notice; got != config.MessageNoSpeech {
		t.Errorf("Notice = %q, want no-speech message", got)
	}
}

func TestSession_Copy(t *testing.T) {
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	f := newSessionFixture(t, tr, autoOptions())
	s := f.session

	s.SetInput("hello")
	f.settle()
	s.CopyOutput()
	if got := f.clipboard.Content(); got != "hola" {
		t.Errorf("clipboard = %q, want 'hola'", got)
	}
	s.CopyInput()
	if got := f.clipboard.Content(); got != "hello" {
		t.Errorf("clipboard = %q, want 'hello'", got)
	}
}

func TestSession_Dictation(t *testing.T) {
	rec := &fakeRecognizer{events: make(chan transcription.Event)}
	tr := newDictTranslator(map[string]string{"hello world": "hola mundo"})
	opts := autoOptions()
	opts.Dictation = NewDictationBridge(rec)
	f := newSessionFixture(t, tr, opts)
	s := f.session

	if err := s.StartDictation(context.Background()); err != nil {
		t.Fatalf("StartDictation() error = %v", err)
	}
	if !s.Snapshot().Listening {
		t.Error("Listening should be true")
	}
	if err := s.StartDictation(context.Background()); !errors.Is(err, ErrDictationActive) {
		t.Errorf("second StartDictation() error = %v, want ErrDictationActive", err)
	}
	if rec.opts.Locale != "en-US" || !rec.opts.InterimResults || !rec.opts.Continuous {
		t.Errorf("options = %+v", rec.opts)
	}

	rec.events <- transcription.Event{Alternatives: []string{"hel"}}
	rec.events <- transcription.Event{Alternatives: []string{"hello"}, Final: true}
	rec.events <- transcription.Event{Alternatives: []string{"world"}, Final: true}
	close(rec.events)
	s.Wait()

	st := s.Snapshot()
	if st.Listening {
		t.Error("Listening should be false after the session ends")
	}
	if st.Input != "hello world" {
		t.Errorf("Input = %q, want 'hello world'", st.Input)
	}
	if st.Output != "hola mundo" {
		t.Errorf("Output = %q, want 'hola mundo'", st.Output)
	}
	if n := len(tr.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
	if f.clock.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", f.clock.Pending())
	}
}

func TestSession_DictationBlankTranscriptClearsOutput(t *testing.T) {
	rec := &fakeRecognizer{events: make(chan transcription.Event)}
	tr := newDictTranslator(map[string]string{"hello": "hola"})
	opts := autoOptions()
	opts.Dictation = NewDictationBridge(rec)
	f := newSessionFixture(t, tr, opts)
	s := f.session

	s.SetInput("hello")
	f.settle()
	if got := s.Snapshot().Output; got != "hola" {
		t.Fatalf("Output = %q, want 'hola'", got)
	}

	if err := s.StartDictation(context.Background()); err != nil {
		t.Fatalf("StartDictation() error = %v", err)
	}
	close(rec.events)
	s.Wait()

	st := s.Snapshot()
	if st.Output != "" {
		t.Errorf("Output = %q, want empty after a blank transcript", st.Output)
	}
	if st.Listening {
		t.Error("Listening should be false")
	}
	if n := len(tr.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestSession_DictationUnsupported(t *testing.T) {
	f := newSessionFixture(t, newDictTranslator(nil), autoOptions())

	err := f.session.StartDictation(context.Background())
	if !errors.Is(err, transcription.ErrUnsupported) {
		t.Fatalf("error = %v, want ErrUnsupported", err)
	}
	st := f.session.Snapshot()
	if st.Notice != config.MessageNoDictation {
		t.Errorf("Notice = %q, want no-dictation message", st.Notice)
	}
	if st.Listening {
		t.Error("Listening should be false")
	}
}

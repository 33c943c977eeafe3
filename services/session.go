package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"realtime-translator/internal/config"
	"realtime-translator/internal/debounce"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/text"
	"realtime-translator/internal/transcription"
	"realtime-translator/internal/translation"
	"realtime-translator/internal/tts"
	"realtime-translator/models"
)

// ErrDictationActive is returned when a dictation session is already open.
var ErrDictationActive = errors.New("dictation already active")

// SessionOptions wires a Session. Controller is required.
type SessionOptions struct {
	Source   string
	Target   string
	Auto     bool
	Debounce time.Duration
	// AfterFunc replaces the debounce timer factory; nil uses time.AfterFunc.
	AfterFunc debounce.AfterFunc

	Controller *TranslationController
	History    *HistoryStore
	Speech     *SpeechBridge
	Dictation  *DictationBridge
	Clipboard  Clipboard
}

// Session is the single owner of the visible translator state. Every user
// action goes through it; observers receive a snapshot after each change.
type Session struct {
	controller *TranslationController
	history    *HistoryStore
	speech     *SpeechBridge
	dictation  *DictationBridge
	clipboard  Clipboard
	debouncer  *debounce.Debouncer[string]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu            sync.Mutex
	state         models.AppState
	seq           uint64
	observers     []func(models.AppState)
	stopDictation context.CancelFunc
	closed        bool
}

// NewSession creates a session in the Idle phase.
func NewSession(opts SessionOptions) *Session {
	if opts.Source == "" {
		opts.Source = config.DefaultSourceLang
	}
	if opts.Target == "" {
		opts.Target = config.DefaultTargetLang
	}
	if opts.Debounce <= 0 {
		opts.Debounce = config.DebounceDelay
	}
	if opts.History == nil {
		opts.History = NewHistoryStore(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		controller: opts.Controller,
		history:    opts.History,
		speech:     opts.Speech,
		dictation:  opts.Dictation,
		clipboard:  opts.Clipboard,
		ctx:        ctx,
		cancel:     cancel,
		state:      models.NewAppState(opts.Source, opts.Target, opts.Auto),
	}
	s.debouncer = debounce.NewWithTimer(opts.Debounce, opts.AfterFunc, s.settle)
	return s
}

// OnChange registers an observer called with a snapshot after every change.
// Observers run on the goroutine that made the change.
func (s *Session) OnChange(fn func(models.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns the translation history, newest first.
func (s *Session) History() models.HistoryLog {
	return s.history.Records()
}

// CanTranslate reports whether a manual translation may start.
func (s *Session) CanTranslate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canTranslateLocked()
}

func (s *Session) canTranslateLocked() bool {
	return strings.TrimSpace(s.state.Input) != "" && !s.state.Loading()
}

// SetInput replaces the input text and restarts the debounce window.
func (s *Session) SetInput(value string) {
	s.update(func() {
		s.state.Input = value
		s.state.ClearError()
		s.state.Notice = ""
		if s.state.Auto {
			s.state.Phase = models.PhaseDebouncing
		}
		s.debouncer.Set(value)
	})
}

// ClearInput empties input and output and drops any in-flight translation.
func (s *Session) ClearInput() {
	s.update(func() {
		s.invalidateLocked()
		s.state.Input = ""
		s.state.Output = ""
		s.state.ClearError()
		s.state.Notice = ""
		s.state.Phase = models.PhaseIdle
		if s.state.Auto {
			s.state.Phase = models.PhaseDebouncing
		}
		s.debouncer.Set("")
	})
}

// SetSource changes the source language. In auto mode the settled input is
// translated again right away.
func (s *Session) SetSource(code string) error {
	if !text.IsValidSourceLanguage(code) {
		return fmt.Errorf("unsupported source language %q", code)
	}
	s.update(func() {
		if s.state.Source == code {
			return
		}
		s.state.Source = code
		s.retranslateLocked()
	})
	return nil
}

// SetTarget changes the target language. "auto" is rejected.
func (s *Session) SetTarget(code string) error {
	if !text.IsValidTargetLanguage(code) {
		return fmt.Errorf("unsupported target language %q", code)
	}
	s.update(func() {
		if s.state.Target == code {
			return
		}
		s.state.Target = code
		s.retranslateLocked()
	})
	return nil
}

// Swap exchanges languages and the input/output texts. The swapped text is
// not translated directly; it goes through the debounce window like typing.
func (s *Session) Swap() {
	s.update(func() {
		s.invalidateLocked()
		s.state.Source, s.state.Target = text.Swap(s.state.Source, s.state.Target)
		s.state.Input, s.state.Output = s.state.Output, s.state.Input
		s.state.ClearError()
		s.state.Phase = models.PhaseIdle
		if s.state.Auto {
			s.state.Phase = models.PhaseDebouncing
		}
		s.debouncer.Set(s.state.Input)
	})
}

// SetAuto turns auto-translate on or off. Enabling it translates the settled
// input right away.
func (s *Session) SetAuto(on bool) {
	s.update(func() {
		if s.state.Auto == on {
			return
		}
		s.state.Auto = on
		if on {
			s.retranslateLocked()
			return
		}
		if s.state.Phase == models.PhaseDebouncing {
			s.state.Phase = models.PhaseIdle
		}
	})
}

// ToggleAuto flips auto-translate and returns the new value.
func (s *Session) ToggleAuto() bool {
	s.mu.Lock()
	on := !s.state.Auto
	s.mu.Unlock()
	s.SetAuto(on)
	return on
}

// Translate starts a manual translation of the current input, bypassing the
// debounce window. It reports false when the input is blank or a translation
// is already running.
func (s *Session) Translate() bool {
	started := false
	s.update(func() {
		if !s.canTranslateLocked() {
			return
		}
		s.debouncer.Cancel()
		s.state.Settled = s.state.Input
		s.beginLocked(s.state.Input)
		started = true
	})
	return started
}

// LoadHistoryItem restores the record at index i without translating.
func (s *Session) LoadHistoryItem(i int) error {
	rec, ok := s.history.At(i)
	if !ok {
		return fmt.Errorf("history: no record at index %d", i)
	}
	s.update(func() {
		s.debouncer.Cancel()
		s.invalidateLocked()
		s.state.Input = rec.Input
		s.state.Output = rec.Output
		s.state.Settled = rec.Input
		s.state.Source = rec.Source
		s.state.Target = rec.Target
		s.state.ClearError()
		s.state.Phase = models.PhaseIdle
	})
	return nil
}

// ClearHistory empties the history and persists the empty snapshot.
func (s *Session) ClearHistory() error {
	err := s.history.Clear()
	s.update(func() {})
	return err
}

// SpeakInput reads the input aloud in the source language ("auto" speaks as English).
func (s *Session) SpeakInput(ctx context.Context) error {
	st := s.Snapshot()
	return s.speak(ctx, st.Input, text.SpeechLanguage(st.Source))
}

// SpeakOutput reads the output aloud in the target language.
func (s *Session) SpeakOutput(ctx context.Context) error {
	st := s.Snapshot()
	return s.speak(ctx, st.Output, st.Target)
}

func (s *Session) speak(ctx context.Context, value, lang string) error {
	err := s.speech.Speak(ctx, value, lang)
	if errors.Is(err, tts.ErrUnsupported) {
		s.setNotice(config.MessageNoSpeech)
	} else if err != nil {
		logger.Warn("speech failed: %v", err)
	}
	return err
}

// CopyInput copies the input to the clipboard.
func (s *Session) CopyInput() {
	s.copy(s.Snapshot().Input)
}

// CopyOutput copies the output to the clipboard.
func (s *Session) CopyOutput() {
	s.copy(s.Snapshot().Output)
}

func (s *Session) copy(value string) {
	if s.clipboard == nil {
		logger.Debug("clipboard unavailable, copy dropped")
		return
	}
	s.clipboard.SetContent(value)
}

// StartDictation opens a recognition session in the source language. The live
// transcript replaces the input as it arrives. When the session ends with
// auto-translate on, the finalized transcript is translated immediately.
func (s *Session) StartDictation(ctx context.Context) error {
	var locale string
	busy := false
	s.update(func() {
		if s.state.Listening {
			busy = true
			return
		}
		s.state.Listening = true
		s.state.Notice = ""
		locale = text.RecognitionLocale(s.state.Source)
	})
	if busy {
		return ErrDictationActive
	}

	dctx, cancel := context.WithCancel(ctx)
	stopOnClose := context.AfterFunc(s.ctx, cancel)

	d, err := s.dictation.Start(dctx, locale)
	if err != nil {
		stopOnClose()
		cancel()
		s.update(func() {
			s.state.Listening = false
			if errors.Is(err, transcription.ErrUnsupported) {
				s.state.Notice = config.MessageNoDictation
			}
		})
		if !errors.Is(err, transcription.ErrUnsupported) {
			logger.Warn("dictation failed to start: %v", err)
		}
		return err
	}

	s.mu.Lock()
	s.stopDictation = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer stopOnClose()
		defer cancel()
		final := d.Run(s.SetInput)
		s.finishDictation(final)
	}()
	return nil
}

// StopDictation ends the current dictation session, if any.
func (s *Session) StopDictation() {
	s.mu.Lock()
	stop := s.stopDictation
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (s *Session) finishDictation(final string) {
	s.update(func() {
		s.state.Listening = false
		s.stopDictation = nil
		if !s.state.Auto {
			return
		}
		s.debouncer.Cancel()
		s.state.Settled = final
		s.beginLocked(final)
	})
}

// Wait blocks until background translations and dictation have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close stops timers, cancels in-flight work and waits for it to finish.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.debouncer.Stop()
	s.invalidateLocked()
	s.mu.Unlock()

	s.cancel()
	if err := s.speech.Cancel(); err != nil {
		logger.Debug("speech cancel on close: %v", err)
	}
	s.wg.Wait()
}

// settle receives each debounced input value.
func (s *Session) settle(value string) {
	s.update(func() {
		if s.closed {
			return
		}
		s.state.Settled = value
		if !s.state.Auto {
			return
		}
		s.beginLocked(value)
	})
}

// retranslateLocked re-runs translation of the settled text in auto mode.
// A blank settled value clears the output.
func (s *Session) retranslateLocked() {
	if !s.state.Auto {
		return
	}
	s.beginLocked(s.state.Settled)
}

// beginLocked starts a translation of value. Blank text resolves immediately
// to an empty output without a network call.
func (s *Session) beginLocked(value string) {
	s.seq++
	seq := s.seq
	s.state.ClearError()

	// The generation is reserved under s.mu so controller order matches seq order.
	call := s.controller.Begin(s.ctx, value, s.state.Source, s.state.Target)
	if strings.TrimSpace(value) == "" {
		s.applyLocked(seq, call.Run())
		return
	}

	s.state.Phase = models.PhaseTranslating
	s.wg.Add(1)
	go s.run(seq, call)
}

func (s *Session) run(seq uint64, call *Call) {
	defer s.wg.Done()
	outcome := call.Run()

	applied := false
	s.update(func() {
		applied = s.applyLocked(seq, outcome)
	})
	if !applied {
		logger.Debug("discarded %s outcome for request %d", outcome.Kind, seq)
	}
}

// applyLocked applies outcome if it belongs to the latest request.
func (s *Session) applyLocked(seq uint64, outcome translation.Outcome) bool {
	if !outcome.Applies() || seq != s.seq {
		return false
	}
	switch outcome.Kind {
	case translation.OutcomeSuccess:
		s.state.Output = outcome.Text
		s.state.Error = ""
		s.state.Phase = s.restingPhaseLocked()
	case translation.OutcomeEmpty:
		s.state.Output = ""
		s.state.Phase = s.restingPhaseLocked()
	case translation.OutcomeFailure:
		logger.Warn("translation failed: %v", outcome.Err)
		s.state.SetError(config.MessageUnavailable)
	}
	return true
}

func (s *Session) restingPhaseLocked() models.Phase {
	if s.state.Auto && s.debouncer.Pending() {
		return models.PhaseDebouncing
	}
	return models.PhaseIdle
}

// invalidateLocked makes any in-flight translation stale.
func (s *Session) invalidateLocked() {
	s.seq++
	s.controller.Cancel()
}

// DismissMessages clears the error banner and any notice.
func (s *Session) DismissMessages() {
	s.update(func() {
		if s.state.Phase == models.PhaseError {
			s.state.Phase = s.restingPhaseLocked()
		}
		s.state.Error = ""
		s.state.Notice = ""
	})
}

func (s *Session) setNotice(msg string) {
	s.update(func() {
		s.state.Notice = msg
	})
}

// update runs fn under the lock and notifies observers with the result.
func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.state
	observers := make([]func(models.AppState), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}

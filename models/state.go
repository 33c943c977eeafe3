package models

// Phase is the auto-translate state.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseDebouncing  Phase = "debouncing"
	PhaseTranslating Phase = "translating"
	PhaseError       Phase = "error"
)

// AppState is the whole visible session state. Copies are snapshots.
type AppState struct {
	Source string
	Target string
	Input  string
	Output string

	// Settled is the last debounced input value.
	Settled string

	Auto  bool
	Phase Phase

	// Listening is set while a dictation session is open.
	Listening bool

	Error  string
	Notice string
}

// NewAppState creates the initial state.
func NewAppState(source, target string, auto bool) AppState {
	return AppState{
		Source: source,
		Target: target,
		Auto:   auto,
		Phase:  PhaseIdle,
	}
}

// Loading reports whether a translation is in flight.
func (s AppState) Loading() bool {
	return s.Phase == PhaseTranslating
}

// SetError moves to the error phase with a user-visible message.
func (s *AppState) SetError(msg string) {
	s.Phase = PhaseError
	s.Error = msg
}

// ClearError drops a stale error banner.
func (s *AppState) ClearError() {
	s.Error = ""
	if s.Phase == PhaseError {
		s.Phase = PhaseIdle
	}
}

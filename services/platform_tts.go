package services

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"realtime-translator/internal/config"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/tts"
)

// CommandSynthesizer speaks through a platform command: say on macOS,
// espeak-ng/espeak on Linux, or a configured command reading text on stdin.
type CommandSynthesizer struct {
	provider tts.ProviderType
	path     string
	args     []string

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// NewSystemSynthesizer picks a synthesizer. A non-empty command overrides
// detection. Returns tts.ErrUnsupported when nothing is installed.
func NewSystemSynthesizer(command string) (*CommandSynthesizer, error) {
	if fields := strings.Fields(command); len(fields) > 0 {
		path, ok := findExecutable(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: %s not found", tts.ErrUnsupported, fields[0])
		}
		return &CommandSynthesizer{provider: tts.ProviderCommand, path: path, args: fields[1:]}, nil
	}

	if runtime.GOOS == "darwin" {
		if path, ok := findExecutable("say"); ok {
			return &CommandSynthesizer{provider: tts.ProviderSay, path: path}, nil
		}
	}
	for _, name := range []string{"espeak-ng", "espeak"} {
		if path, ok := findExecutable(name); ok {
			return &CommandSynthesizer{provider: tts.ProviderEspeak, path: path}, nil
		}
	}
	return nil, tts.ErrUnsupported
}

// Provider returns the backend in use.
func (s *CommandSynthesizer) Provider() tts.ProviderType {
	return s.provider
}

// Voices lists platform voices in the order the platform reports them.
func (s *CommandSynthesizer) Voices(ctx context.Context) ([]tts.Voice, error) {
	var args []string
	switch s.provider {
	case tts.ProviderSay:
		args = []string{"-v", "?"}
	case tts.ProviderEspeak:
		args = []string{"--voices"}
	default:
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, config.ExecTimeoutVoices)
	defer cancel()
	out, err := exec.CommandContext(ctx, s.path, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("tts: list voices: %w", err)
	}

	if s.provider == tts.ProviderSay {
		return parseSayVoices(out), nil
	}
	return parseEspeakVoices(out), nil
}

// Speak starts the command and returns without waiting for playback.
func (s *CommandSynthesizer) Speak(ctx context.Context, u tts.Utterance) error {
	if err := s.Cancel(); err != nil {
		logger.Debug("tts: cancel: %v", err)
	}

	cmd := exec.CommandContext(ctx, s.path, s.speakArgs(u)...)
	cmd.Stdin = strings.NewReader(u.Text)
	if s.provider == tts.ProviderCommand {
		cmd.Env = append(os.Environ(), "SPEECH_LANG="+u.Lang)
		if u.Voice != nil {
			cmd.Env = append(cmd.Env, "SPEECH_VOICE="+u.Voice.Name)
		}
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("tts: start %s: %w", s.provider, err)
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.cmd = cmd
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil {
			logger.Debug("tts: %s exited: %v", s.provider, err)
		}
		s.mu.Lock()
		if s.cmd == cmd {
			s.cmd = nil
		}
		s.mu.Unlock()
	}()
	return nil
}

func (s *CommandSynthesizer) speakArgs(u tts.Utterance) []string {
	switch s.provider {
	case tts.ProviderSay:
		// say reads stdin when no message is given
		if u.Voice != nil {
			return []string{"-v", u.Voice.Name}
		}
		return nil
	case tts.ProviderEspeak:
		args := []string{"--stdin"}
		if u.Lang != "" {
			args = append(args, "-v", strings.ToLower(u.Lang))
		}
		return args
	default:
		return s.args
	}
}

// Cancel kills the running utterance, if any.
func (s *CommandSynthesizer) Cancel() error {
	s.mu.Lock()
	cmd := s.cmd
	s.cmd = nil
	s.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && err != os.ErrProcessDone {
		return fmt.Errorf("tts: kill: %w", err)
	}
	return nil
}

// Wait blocks until the current utterance finishes or ctx is done.
func (s *CommandSynthesizer) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// say -v ? prints: "Alex                en_US    # Most people recognize me by my voice."
var sayVoiceRegex = regexp.MustCompile(`^(.+?)\s+([a-z]{2,3}[_-][A-Za-z0-9]+)\s+#`)

func parseSayVoices(out []byte) []tts.Voice {
	var voices []tts.Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		m := sayVoiceRegex.FindStringSubmatch(scanner.Text())
		if len(m) < 3 {
			continue
		}
		voices = append(voices, tts.Voice{
			Name: strings.TrimSpace(m[1]),
			Lang: strings.ReplaceAll(m[2], "_", "-"),
		})
	}
	return voices
}

// espeak-ng --voices prints a header, then: "Pty Language Age/Gender VoiceName File Other"
func parseEspeakVoices(out []byte) []tts.Voice {
	var voices []tts.Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, tts.Voice{Name: fields[3], Lang: fields[1]})
	}
	return voices
}

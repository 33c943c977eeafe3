package services

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"realtime-translator/internal/logger"
	"realtime-translator/internal/transcription"
)

// CommandRecognizer runs an external streaming recognizer. The helper is
// started with --locale and prints one JSON object per result on stdout:
//
//	{"transcript": "hello", "alternatives": ["hello", "yellow"], "final": true}
//
// The session ends when the helper exits.
type CommandRecognizer struct {
	path string
	args []string
}

// NewCommandRecognizer resolves command. An empty command reports
// transcription.ErrUnsupported.
func NewCommandRecognizer(command string) (*CommandRecognizer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, transcription.ErrUnsupported
	}
	path, ok := findExecutable(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", transcription.ErrUnsupported, fields[0])
	}
	return &CommandRecognizer{path: path, args: fields[1:]}, nil
}

// Start launches the helper. Cancelling ctx stops it.
func (r *CommandRecognizer) Start(ctx context.Context, opts transcription.Options) (<-chan transcription.Event, error) {
	args := append([]string{}, r.args...)
	if opts.Locale != "" {
		args = append(args, "--locale", opts.Locale)
	}
	if opts.InterimResults {
		args = append(args, "--interim")
	}
	if opts.Continuous {
		args = append(args, "--continuous")
	}

	cmd := exec.CommandContext(ctx, r.path, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start recognizer: %w", err)
	}

	events := make(chan transcription.Event)
	go func() {
		defer close(events)

		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			e, ok := ParseRecognitionLine(scanner.Bytes())
			if !ok {
				logger.Debug("recognizer: skipping line %q", scanner.Text())
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			logger.Warn("recognizer exited: %v", err)
		}
	}()
	return events, nil
}

type recognitionLine struct {
	Transcript   string   `json:"transcript"`
	Alternatives []string `json:"alternatives"`
	Final        bool     `json:"final"`
}

// ParseRecognitionLine decodes one helper output line. The transcript field,
// when set, is the best alternative.
func ParseRecognitionLine(line []byte) (transcription.Event, bool) {
	line = []byte(strings.TrimSpace(string(line)))
	if len(line) == 0 {
		return transcription.Event{}, false
	}
	var l recognitionLine
	if err := json.Unmarshal(line, &l); err != nil {
		return transcription.Event{}, false
	}

	alts := l.Alternatives
	if l.Transcript != "" && (len(alts) == 0 || alts[0] != l.Transcript) {
		alts = append([]string{l.Transcript}, alts...)
	}
	return transcription.Event{Alternatives: alts, Final: l.Final}, true
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"realtime-translator/internal/config"
	"realtime-translator/internal/storage"
	"realtime-translator/internal/text"
	"realtime-translator/internal/translation"
	"realtime-translator/models"
	"realtime-translator/services"
)

func newTranslateCmd(opts *rootOptions) *cobra.Command {
	var from, to, file string
	var workers int

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text once",
		Long:  "Translates the given text, or stdin when no text is given, and records it in history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) > 0 {
					return errors.New("--file cannot be combined with text arguments")
				}
				return runBatch(cmd, opts, file, from, to, workers)
			}
			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = strings.TrimRight(string(data), "\r\n")
			}
			return runTranslate(cmd, opts, input, from, to)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "source language code (default from config)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "target language code (default from config)")
	cmd.Flags().StringVar(&file, "file", "", "translate each line of a file (\"-\" for stdin)")
	cmd.Flags().IntVar(&workers, "workers", config.DefaultBatchWorkers, "concurrent requests for --file")
	return cmd
}

// translateStack is the one-shot translator with persistent history.
type translateStack struct {
	cfg        *models.Config
	store      storage.Store
	history    *services.HistoryStore
	translator *services.FallbackTranslator
	controller *services.TranslationController
}

func openTranslateStack(cmd *cobra.Command, opts *rootOptions) (*translateStack, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path, nil)
	if err != nil {
		return nil, err
	}

	history := services.NewHistoryStore(store)
	history.Load()
	translator := services.NewFallbackTranslator(cfg.Endpoints, nil)
	return &translateStack{
		cfg:        cfg,
		store:      store,
		history:    history,
		translator: translator,
		controller: services.NewTranslationController(translator, history),
	}, nil
}

func (s *translateStack) Close() {
	s.store.Close()
}

// resolveLanguages fills blanks from config and validates the pair.
func resolveLanguages(cfg *models.Config, from, to string) (string, string, error) {
	if from == "" {
		from = cfg.DefaultSource
	}
	if to == "" {
		to = cfg.DefaultTarget
	}
	if !text.IsValidSourceLanguage(from) {
		return "", "", fmt.Errorf("unsupported source language %q", from)
	}
	if !text.IsValidTargetLanguage(to) {
		return "", "", fmt.Errorf("unsupported target language %q", to)
	}
	return from, to, nil
}

func runTranslate(cmd *cobra.Command, opts *rootOptions, input, from, to string) error {
	stack, err := openTranslateStack(cmd, opts)
	if err != nil {
		return err
	}
	defer stack.Close()

	from, to, err = resolveLanguages(stack.cfg, from, to)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := stack.controller.Translate(ctx, input, from, to)
	switch out.Kind {
	case translation.OutcomeEmpty:
		return nil
	case translation.OutcomeFailure:
		if errors.Is(out.Err, translation.ErrAllEndpointsUnavailable) {
			return errors.New(config.MessageUnavailable)
		}
		return out.Err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Text)
	return nil
}

func readLines(cmd *cobra.Command, file string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return lines, nil
}

// runBatch prints one output line per input line; failed lines print empty
// and are reported on stderr.
func runBatch(cmd *cobra.Command, opts *rootOptions, file, from, to string, workers int) error {
	lines, err := readLines(cmd, file)
	if err != nil {
		return err
	}

	stack, err := openTranslateStack(cmd, opts)
	if err != nil {
		return err
	}
	defer stack.Close()

	from, to, err = resolveLanguages(stack.cfg, from, to)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	batch := services.NewBatchTranslator(stack.translator, stack.history, workers)
	results := batch.Translate(ctx, lines, from, to, nil)

	failed := 0
	for _, line := range results {
		fmt.Fprintln(cmd.OutOrStdout(), line.Output)
		if line.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", line.Number, line.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, len(results))
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"realtime-translator/internal/config"
	"realtime-translator/internal/text"
	"realtime-translator/internal/transcription"
	"realtime-translator/internal/translation"
	"realtime-translator/services"
)

func newDictateCmd(opts *rootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "dictate",
		Short: "Dictate through the configured recognizer and translate the result",
		Long: "Streams speech through speech.recognizer_command, shows the live transcript,\n" +
			"and translates the final transcript when the session ends (Ctrl+C to stop).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDictate(cmd, opts, from, to)
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "spoken language code (default from config)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "target language code (default from config)")
	return cmd
}

func runDictate(cmd *cobra.Command, opts *rootOptions, from, to string) error {
	stack, err := openTranslateStack(cmd, opts)
	if err != nil {
		return err
	}
	defer stack.Close()

	from, to, err = resolveLanguages(stack.cfg, from, to)
	if err != nil {
		return err
	}

	recognizer, err := services.NewCommandRecognizer(stack.cfg.Speech.RecognizerCommand)
	if err != nil {
		if errors.Is(err, transcription.ErrUnsupported) {
			return fmt.Errorf("%s (%w)", config.MessageNoDictation, err)
		}
		return err
	}

	// Interrupt ends the recognition session; translation still runs after it.
	listenCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := services.NewDictationBridge(recognizer).Start(listenCtx, text.RecognitionLocale(from))
	if err != nil {
		return fmt.Errorf("start dictation: %w", err)
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, "Listening... (Ctrl+C to stop)")
	final := d.Run(func(live string) {
		fmt.Fprintf(errOut, "\r\033[K%s", live)
	})
	fmt.Fprintln(errOut)

	out := stack.controller.Translate(context.Background(), final, from, to)
	switch out.Kind {
	case translation.OutcomeEmpty:
		fmt.Fprintln(errOut, "Nothing recognized.")
		return nil
	case translation.OutcomeFailure:
		return errors.New(config.MessageUnavailable)
	}
	fmt.Fprintln(cmd.OutOrStdout(), final)
	fmt.Fprintln(cmd.OutOrStdout(), out.Text)
	return nil
}

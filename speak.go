package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"realtime-translator/internal/config"
	"realtime-translator/internal/text"
	"realtime-translator/internal/tts"
	"realtime-translator/services"
)

func newSpeakCmd(opts *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "speak <text...>",
		Short: "Read text aloud with a matching platform voice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeak(cmd, opts, strings.Join(args, " "), lang)
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", config.DefaultTargetLang, "language code of the text")
	return cmd
}

func runSpeak(cmd *cobra.Command, opts *rootOptions, value, lang string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	synth, err := services.NewSystemSynthesizer(cfg.Speech.SynthesizerCommand)
	if err != nil {
		if errors.Is(err, tts.ErrUnsupported) {
			return fmt.Errorf("%s (%w)", config.MessageNoSpeech, err)
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bridge := services.NewSpeechBridge(synth)
	if err := bridge.Speak(ctx, value, text.SpeechLanguage(lang)); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return synth.Wait(ctx)
}

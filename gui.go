package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"realtime-translator/internal/config"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/storage"
	"realtime-translator/services"
	"realtime-translator/ui"
	apptheme "realtime-translator/ui/theme"
)

func runGUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	a := app.NewWithID(config.AppID)
	a.Settings().SetTheme(&apptheme.TranslatorTheme{})

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path, a)
	if err != nil {
		logger.Warn("history storage unavailable, keeping it in memory: %v", err)
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	synth, recognizer := services.DetectSpeech(cfg)
	session := services.NewSessionFromConfig(cfg, services.Environment{
		Store:       store,
		Synthesizer: synth,
		Recognizer:  recognizer,
		Clipboard:   a.Clipboard(),
	})
	defer session.Close()

	w := a.NewWindow("Real-time Translator")
	w.Resize(fyne.NewSize(1000, 700))

	mainUI := ui.NewMainUI(w, session, cfg)
	w.SetContent(mainUI.Build())

	w.ShowAndRun()
	return nil
}

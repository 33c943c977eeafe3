// Package ui is the fyne front end of the translator.
package ui

import (
	"context"
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"realtime-translator/internal/logger"
	"realtime-translator/internal/text"
	"realtime-translator/internal/transcription"
	"realtime-translator/internal/tts"
	"realtime-translator/models"
	"realtime-translator/services"
	"realtime-translator/ui/layouts"
	appTheme "realtime-translator/ui/theme"
	"realtime-translator/ui/widgets"
)

// MainUI is the main application UI
type MainUI struct {
	window  fyne.Window
	session *services.Session
	config  *models.Config

	sourceSelector *widgets.LanguageSelector
	targetSelector *widgets.LanguageSelector
	swapBtn        *widget.Button
	input          *widgets.TextPanel
	output         *widgets.TextPanel
	banner         *widgets.Banner
	controls       *widgets.ControlsBar
	history        *HistoryList
	drawer         fyne.CanvasObject
}

// NewMainUI wires the widgets to session. cfg backs the settings dialog
// and may be nil.
func NewMainUI(w fyne.Window, session *services.Session, cfg *models.Config) *MainUI {
	ui := &MainUI{
		window:  w,
		session: session,
		config:  cfg,
	}

	ui.sourceSelector = widgets.NewCompactLanguageSelector(text.SourceLanguages(), ui.onSourceChanged)
	ui.targetSelector = widgets.NewCompactLanguageSelector(text.TargetLanguages(), ui.onTargetChanged)
	ui.swapBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), session.Swap)

	ui.input = widgets.NewInputPanel("Type or dictate text to translate")
	ui.input.OnChanged = session.SetInput
	ui.input.OnSpeak = func() { ui.speak(session.SpeakInput) }
	ui.input.OnCopy = session.CopyInput
	ui.input.OnClear = session.ClearInput

	ui.output = widgets.NewOutputPanel()
	ui.output.OnSpeak = func() { ui.speak(session.SpeakOutput) }
	ui.output.OnCopy = session.CopyOutput

	ui.banner = widgets.NewBanner()
	ui.banner.OnDismiss = session.DismissMessages

	ui.controls = widgets.NewControlsBar()
	ui.controls.OnTranslate = func() { session.Translate() }
	ui.controls.OnAutoChanged = session.SetAuto
	ui.controls.OnDictate = ui.toggleDictation
	ui.controls.OnToggleHistory = ui.toggleHistory
	ui.controls.OnSettings = ui.showSettings

	ui.history = NewHistoryList(ui.onHistorySelected, ui.confirmClearHistory)

	session.OnChange(func(models.AppState) {
		fyne.Do(func() { ui.render(ui.session.Snapshot()) })
	})
	return ui
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	padding := theme.Padding()

	languageRow := container.New(layouts.NewTwinColumnLayout(48, padding),
		ui.sourceSelector, ui.swapBtn, ui.targetSelector)

	editors := container.New(layouts.NewTwinColumnLayout(0, padding),
		ui.input, widget.NewLabel(""), ui.output)

	workspace := container.NewBorder(
		container.NewVBox(languageRow, ui.banner),
		nil, nil, nil,
		editors,
	)

	ui.drawer = widgets.NewPanel(appTheme.ColorNamePanel, ui.history.Build())
	ui.drawer.Hide()
	body := container.New(layouts.NewDrawerLayout(theme.Size(appTheme.SizeNameHistoryWidth), padding),
		container.NewPadded(workspace), ui.drawer)

	content := container.New(layouts.NewContentWithBottomBar(theme.Size(appTheme.SizeNameControlHeight)),
		body, ui.controls)

	ui.render(ui.session.Snapshot())
	return content
}

// render mirrors state into the widgets. Must run on the fyne thread.
func (ui *MainUI) render(state models.AppState) {
	ui.sourceSelector.SetSelected(state.Source)
	ui.targetSelector.SetSelected(state.Target)

	ui.input.SetCaption(text.GetLanguageName(state.Source))
	ui.output.SetCaption(text.GetLanguageName(state.Target))
	ui.input.SetText(state.Input)
	ui.output.SetText(state.Output)

	ui.banner.SetMessages(state.Error, state.Notice)
	ui.controls.SetState(state, canTranslate(state))

	ui.history.SetRecords(ui.session.History())
}

func canTranslate(state models.AppState) bool {
	return !state.Loading() && strings.TrimSpace(state.Input) != ""
}

func (ui *MainUI) onSourceChanged(code string) {
	if err := ui.session.SetSource(code); err != nil {
		logger.Warn("source language: %v", err)
	}
}

func (ui *MainUI) onTargetChanged(code string) {
	if err := ui.session.SetTarget(code); err != nil {
		logger.Warn("target language: %v", err)
	}
}

func (ui *MainUI) onHistorySelected(index int) {
	if err := ui.session.LoadHistoryItem(index); err != nil {
		logger.Warn("history recall: %v", err)
	}
}

func (ui *MainUI) confirmClearHistory() {
	if ui.history.Len() == 0 {
		return
	}
	dialog.ShowConfirm("Clear history", "Remove all saved translations?", func(ok bool) {
		if !ok {
			return
		}
		if err := ui.session.ClearHistory(); err != nil {
			dialog.ShowError(err, ui.window)
		}
	}, ui.window)
}

func (ui *MainUI) toggleHistory() {
	if ui.drawer == nil {
		return
	}
	if ui.drawer.Visible() {
		ui.drawer.Hide()
	} else {
		ui.history.SetRecords(ui.session.History())
		ui.drawer.Show()
	}
}

func (ui *MainUI) toggleDictation() {
	if ui.session.Snapshot().Listening {
		ui.session.StopDictation()
		return
	}
	err := ui.session.StartDictation(context.Background())
	if err != nil && !errors.Is(err, transcription.ErrUnsupported) {
		dialog.ShowError(err, ui.window)
	}
}

// speak runs fn off the fyne thread; unsupported speech is already a notice.
func (ui *MainUI) speak(fn func(context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil && !errors.Is(err, tts.ErrUnsupported) {
			logger.Warn("speech output: %v", err)
		}
	}()
}

func (ui *MainUI) showSettings() {
	if ui.config == nil {
		return
	}
	d := NewSettingsDialog(ui.window, ui.config)
	d.OnSave = func(cfg *models.Config) {
		logger.Info("settings saved to %s", cfg.ConfigPath())
	}
	d.Show()
}

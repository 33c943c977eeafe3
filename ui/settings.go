package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"realtime-translator/internal/config"
	"realtime-translator/internal/text"
	"realtime-translator/models"
	"realtime-translator/ui/widgets"
)

// SettingsDialog edits the YAML configuration. The running session keeps its
// settings; saved values take effect on the next launch.
type SettingsDialog struct {
	window fyne.Window
	config *models.Config

	endpointsEntry   *widget.Entry
	sourceSelector   *widgets.LanguageSelector
	targetSelector   *widgets.LanguageSelector
	autoCheck        *widget.Check
	debounceEntry    *widget.Entry
	backendSelect    *widget.Select
	synthesizerEntry *widget.Entry
	recognizerEntry  *widget.Entry
	restartNote      *widget.Label

	OnSave func(cfg *models.Config)
}

// NewSettingsDialog creates a dialog over cfg. cfg is only modified on a
// successful save.
func NewSettingsDialog(window fyne.Window, cfg *models.Config) *SettingsDialog {
	d := &SettingsDialog{window: window, config: cfg}

	d.endpointsEntry = widget.NewMultiLineEntry()
	d.endpointsEntry.SetText(strings.Join(cfg.Endpoints, "\n"))
	d.endpointsEntry.SetMinRowsVisible(3)

	d.sourceSelector = widgets.NewCompactLanguageSelector(text.SourceLanguages(), nil)
	d.sourceSelector.SetSelected(cfg.DefaultSource)
	d.targetSelector = widgets.NewCompactLanguageSelector(text.TargetLanguages(), nil)
	d.targetSelector.SetSelected(cfg.DefaultTarget)

	d.autoCheck = widget.NewCheck("Translate while typing", nil)
	d.autoCheck.SetChecked(cfg.AutoTranslate)

	d.debounceEntry = widget.NewEntry()
	d.debounceEntry.SetText(strconv.Itoa(cfg.DebounceMS))

	d.backendSelect = widget.NewSelect([]string{"sqlite", "preferences", "memory"}, nil)
	d.backendSelect.SetSelected(cfg.Storage.Backend)

	d.synthesizerEntry = widget.NewEntry()
	d.synthesizerEntry.SetPlaceHolder("system default")
	d.synthesizerEntry.SetText(cfg.Speech.SynthesizerCommand)
	d.recognizerEntry = widget.NewEntry()
	d.recognizerEntry.SetPlaceHolder("none")
	d.recognizerEntry.SetText(cfg.Speech.RecognizerCommand)

	d.restartNote = widget.NewLabel(config.MessageRestart)
	d.restartNote.Wrapping = fyne.TextWrapWord
	d.restartNote.Importance = widget.LowImportance

	return d
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	scroll := container.NewVScroll(d.build())
	scroll.SetMinSize(fyne.NewSize(480, 420))

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", scroll, func(save bool) {
		if !save {
			return
		}
		if err := d.Save(); err != nil {
			dialog.ShowError(err, d.window)
		}
	}, d.window)
}

func (d *SettingsDialog) build() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Endpoints", d.endpointsEntry),
		),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Default source", d.sourceSelector),
			widget.NewFormItem("Default target", d.targetSelector),
			widget.NewFormItem("Real-time", d.autoCheck),
			widget.NewFormItem("Debounce (ms)", d.debounceEntry),
		),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("History storage", d.backendSelect),
			widget.NewFormItem("Speech command", d.synthesizerEntry),
			widget.NewFormItem("Recognizer command", d.recognizerEntry),
		),
		d.restartNote,
	)
}

// Apply builds a validated config from the form without touching disk.
func (d *SettingsDialog) Apply() (*models.Config, error) {
	next := *d.config

	next.Endpoints = nil
	for _, line := range strings.Split(d.endpointsEntry.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			next.Endpoints = append(next.Endpoints, line)
		}
	}

	ms, err := strconv.Atoi(strings.TrimSpace(d.debounceEntry.Text))
	if err != nil {
		return nil, errors.New("debounce must be a whole number of milliseconds")
	}
	next.DebounceMS = ms

	next.DefaultSource = d.sourceSelector.GetSelected()
	next.DefaultTarget = d.targetSelector.GetSelected()
	next.AutoTranslate = d.autoCheck.Checked
	next.Storage.Backend = d.backendSelect.Selected
	next.Speech.SynthesizerCommand = strings.TrimSpace(d.synthesizerEntry.Text)
	next.Speech.RecognizerCommand = strings.TrimSpace(d.recognizerEntry.Text)

	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

// Save validates the form and writes the config file.
func (d *SettingsDialog) Save() error {
	next, err := d.Apply()
	if err != nil {
		return err
	}
	if err := next.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	*d.config = *next
	if d.OnSave != nil {
		d.OnSave(d.config)
	}
	return nil
}

package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"

	"realtime-translator/internal/config"
	"realtime-translator/models"
)

func newSettingsFixture(t *testing.T) (*SettingsDialog, string) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := models.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	w := test.NewWindow(container.NewStack())
	t.Cleanup(w.Close)
	return NewSettingsDialog(w, cfg), path
}

func TestSettingsDialog_Apply(t *testing.T) {
	d, _ := newSettingsFixture(t)

	d.endpointsEntry.SetText("https://a.example/translate\n\n  https://b.example/translate  \n")
	d.debounceEntry.SetText("750")
	d.targetSelector.SetSelected("de")
	d.autoCheck.SetChecked(false)

	cfg, err := d.Apply()
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(cfg.Endpoints) != 2 || cfg.Endpoints[1] != "https://b.example/translate" {
		t.Errorf("Endpoints = %v", cfg.Endpoints)
	}
	if cfg.DebounceMS != 750 {
		t.Errorf("DebounceMS = %d, want 750", cfg.DebounceMS)
	}
	if cfg.DefaultTarget != "de" || cfg.AutoTranslate {
		t.Errorf("target/auto = %q/%v, want de/false", cfg.DefaultTarget, cfg.AutoTranslate)
	}
	if d.config.DebounceMS == 750 {
		t.Error("Apply must not modify the original config")
	}
}

func TestSettingsDialog_ApplyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name      string
		endpoints string
		debounce  string
		wantErr   string
	}{
		{"no endpoints", "", "500", "endpoint"},
		{"relative endpoint", "/translate", "500", "endpoint"},
		{"debounce not a number", "https://a.example/translate", "soon", "debounce"},
		{"negative debounce", "https://a.example/translate", "-1", "debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newSettingsFixture(t)
			d.endpointsEntry.SetText(tt.endpoints)
			d.debounceEntry.SetText(tt.debounce)

			_, err := d.Apply()
			if err == nil {
				t.Fatal("Apply() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSettingsDialog_SaveWritesFile(t *testing.T) {
	d, path := newSettingsFixture(t)
	var saved *models.Config
	d.OnSave = func(cfg *models.Config) { saved = cfg }

	d.debounceEntry.SetText("300")
	if err := d.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved == nil {
		t.Fatal("OnSave was not called")
	}

	loaded, err := models.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DebounceMS != 300 {
		t.Errorf("reloaded DebounceMS = %d, want 300", loaded.DebounceMS)
	}
}

func TestSettingsDialog_ShowsRestartNote(t *testing.T) {
	d, _ := newSettingsFixture(t)

	box, ok := d.build().(*fyne.Container)
	if !ok {
		t.Fatal("build() should return a container")
	}
	last := box.Objects[len(box.Objects)-1]
	if last != d.restartNote {
		t.Fatalf("last object = %T, want the restart note", last)
	}
	if got := d.restartNote.Text; got != config.MessageRestart {
		t.Errorf("note = %q, want %q", got, config.MessageRestart)
	}
}

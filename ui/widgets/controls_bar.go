package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"realtime-translator/models"
	appTheme "realtime-translator/ui/theme"
)

// ControlsBar is the bottom bar: phase badge, real-time toggle,
// dictation, history toggle and the manual Translate button.
type ControlsBar struct {
	widget.BaseWidget

	OnTranslate     func()
	OnAutoChanged   func(on bool)
	OnDictate       func()
	OnToggleHistory func()
	OnSettings      func()

	badge        *PhaseBadge
	autoCheck    *widget.Check
	dictateBtn   *widget.Button
	historyBtn   *widget.Button
	settingsBtn  *widget.Button
	translateBtn *widget.Button

	syncing bool
}

// NewControlsBar creates the bar. Callbacks may be set afterwards.
func NewControlsBar() *ControlsBar {
	c := &ControlsBar{}

	c.badge = NewPhaseBadge(models.PhaseIdle)
	c.autoCheck = widget.NewCheck("Real-time", func(on bool) {
		if !c.syncing && c.OnAutoChanged != nil {
			c.OnAutoChanged(on)
		}
	})
	c.dictateBtn = widget.NewButtonWithIcon("Dictate", theme.MediaRecordIcon(), func() {
		if c.OnDictate != nil {
			c.OnDictate()
		}
	})
	c.historyBtn = widget.NewButtonWithIcon("History", theme.HistoryIcon(), func() {
		if c.OnToggleHistory != nil {
			c.OnToggleHistory()
		}
	})
	c.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if c.OnSettings != nil {
			c.OnSettings()
		}
	})
	c.translateBtn = widget.NewButtonWithIcon("Translate", theme.MailForwardIcon(), func() {
		if c.OnTranslate != nil {
			c.OnTranslate()
		}
	})
	c.translateBtn.Importance = widget.HighImportance

	c.ExtendBaseWidget(c)
	return c
}

// SetState mirrors the session state into the controls.
func (c *ControlsBar) SetState(state models.AppState, canTranslate bool) {
	c.badge.SetPhase(state.Phase, state.Listening)

	if c.autoCheck.Checked != state.Auto {
		c.syncing = true
		c.autoCheck.SetChecked(state.Auto)
		c.syncing = false
	}

	if state.Listening {
		c.dictateBtn.SetText("Stop")
		c.dictateBtn.SetIcon(theme.MediaStopIcon())
		c.dictateBtn.Importance = widget.DangerImportance
	} else {
		c.dictateBtn.SetText("Dictate")
		c.dictateBtn.SetIcon(theme.MediaRecordIcon())
		c.dictateBtn.Importance = widget.MediumImportance
	}
	c.dictateBtn.Refresh()

	if canTranslate {
		c.translateBtn.Enable()
	} else {
		c.translateBtn.Disable()
	}
}

// TranslateEnabled reports whether the manual Translate button is active.
func (c *ControlsBar) TranslateEnabled() bool {
	return !c.translateBtn.Disabled()
}

// AutoChecked reports the real-time toggle value.
func (c *ControlsBar) AutoChecked() bool {
	return c.autoCheck.Checked
}

// DictateLabel returns the dictation button text.
func (c *ControlsBar) DictateLabel() string {
	return c.dictateBtn.Text
}

// CreateRenderer implements fyne.Widget
func (c *ControlsBar) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewHBox(
		c.badge,
		c.autoCheck,
		layout.NewSpacer(),
		c.dictateBtn,
		c.historyBtn,
		c.settingsBtn,
		c.translateBtn,
	)
	return widget.NewSimpleRenderer(NewPanel(appTheme.ColorNamePanel, content))
}

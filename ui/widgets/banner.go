package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "realtime-translator/ui/theme"
)

// Banner shows the session error, or failing that its notice.
// It hides itself when both are empty.
type Banner struct {
	widget.BaseWidget

	OnDismiss func()

	label *widget.Label
	icon  *widget.Icon
	panel *Panel
}

// NewBanner creates a hidden banner.
func NewBanner() *Banner {
	b := &Banner{
		label: widget.NewLabel(""),
		icon:  widget.NewIcon(theme.InfoIcon()),
	}
	b.label.Wrapping = fyne.TextWrapWord
	dismiss := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if b.OnDismiss != nil {
			b.OnDismiss()
		}
	})
	dismiss.Importance = widget.LowImportance

	b.panel = NewPanel(appTheme.ColorNameSurfaceVariant,
		container.NewBorder(nil, nil, b.icon, dismiss, b.label))
	b.ExtendBaseWidget(b)
	b.Hide()
	return b
}

// SetMessages updates the banner from the session's error and notice.
func (b *Banner) SetMessages(errMsg, notice string) {
	switch {
	case errMsg != "":
		b.label.SetText(errMsg)
		b.icon.SetResource(theme.ErrorIcon())
		b.panel.SetColorName(appTheme.ColorNamePhaseError)
		b.Show()
	case notice != "":
		b.label.SetText(notice)
		b.icon.SetResource(theme.InfoIcon())
		b.panel.SetColorName(appTheme.ColorNameSurfaceVariant)
		b.Show()
	default:
		b.label.SetText("")
		b.Hide()
	}
}

// Message returns the text currently shown.
func (b *Banner) Message() string {
	return b.label.Text
}

// CreateRenderer implements fyne.Widget
func (b *Banner) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.panel)
}

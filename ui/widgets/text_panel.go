package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "realtime-translator/ui/theme"
)

// TextPanel is one side of the translator: a language caption, the text
// area and its Speak/Copy/Clear actions. Input panels hold an editable
// entry; output panels a selectable label.
type TextPanel struct {
	widget.BaseWidget

	OnChanged func(value string)
	OnSpeak   func()
	OnCopy    func()
	OnClear   func()

	caption *widget.Label
	entry   *widget.Entry
	output  *widget.Label

	speakBtn *widget.Button
	copyBtn  *widget.Button
	clearBtn *widget.Button

	syncing bool
}

// NewInputPanel creates the editable source panel.
func NewInputPanel(placeholder string) *TextPanel {
	p := newTextPanel()
	p.entry = widget.NewMultiLineEntry()
	p.entry.Wrapping = fyne.TextWrapWord
	p.entry.SetPlaceHolder(placeholder)
	p.entry.OnChanged = func(value string) {
		if !p.syncing && p.OnChanged != nil {
			p.OnChanged(value)
		}
	}
	p.clearBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		if p.OnClear != nil {
			p.OnClear()
		}
	})
	p.ExtendBaseWidget(p)
	return p
}

// NewOutputPanel creates the read-only translation panel.
func NewOutputPanel() *TextPanel {
	p := newTextPanel()
	p.output = widget.NewLabel("")
	p.output.Wrapping = fyne.TextWrapWord
	p.output.Selectable = true
	p.ExtendBaseWidget(p)
	return p
}

func newTextPanel() *TextPanel {
	p := &TextPanel{caption: widget.NewLabel("")}
	p.caption.TextStyle = fyne.TextStyle{Bold: true}
	p.speakBtn = widget.NewButtonWithIcon("", theme.VolumeUpIcon(), func() {
		if p.OnSpeak != nil {
			p.OnSpeak()
		}
	})
	p.copyBtn = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
		if p.OnCopy != nil {
			p.OnCopy()
		}
	})
	return p
}

// SetCaption sets the language caption.
func (p *TextPanel) SetCaption(caption string) {
	p.caption.SetText(caption)
}

// Caption returns the language caption.
func (p *TextPanel) Caption() string {
	return p.caption.Text
}

// SetText replaces the text without firing OnChanged.
func (p *TextPanel) SetText(value string) {
	if p.entry != nil {
		if p.entry.Text == value {
			return
		}
		p.syncing = true
		p.entry.SetText(value)
		p.syncing = false
		return
	}
	p.output.SetText(value)
}

// Text returns the panel's current text.
func (p *TextPanel) Text() string {
	if p.entry != nil {
		return p.entry.Text
	}
	return p.output.Text
}

// Type simulates a user edit on an input panel.
func (p *TextPanel) Type(value string) {
	if p.entry != nil {
		p.entry.SetText(value)
	}
}

// CreateRenderer implements fyne.Widget
func (p *TextPanel) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(layout.NewSpacer(), p.speakBtn, p.copyBtn)
	if p.clearBtn != nil {
		actions.Add(p.clearBtn)
	}

	var body fyne.CanvasObject
	if p.entry != nil {
		body = p.entry
	} else {
		body = container.NewVScroll(p.output)
	}

	content := container.NewBorder(p.caption, actions, nil, nil, body)
	return widget.NewSimpleRenderer(NewPanel(appTheme.ColorNameSurface, content))
}

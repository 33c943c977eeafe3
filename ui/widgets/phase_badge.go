package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"realtime-translator/models"
	appTheme "realtime-translator/ui/theme"
)

// PhaseBadge shows the auto-translate phase as a colored dot and label.
type PhaseBadge struct {
	widget.BaseWidget

	Phase     models.Phase
	Listening bool
}

// NewPhaseBadge creates a badge in the given phase.
func NewPhaseBadge(phase models.Phase) *PhaseBadge {
	b := &PhaseBadge{Phase: phase}
	b.ExtendBaseWidget(b)
	return b
}

// SetPhase updates the phase and dictation flag.
func (b *PhaseBadge) SetPhase(phase models.Phase, listening bool) {
	if b.Phase == phase && b.Listening == listening {
		return
	}
	b.Phase = phase
	b.Listening = listening
	b.Refresh()
}

// PhaseText is the label shown for a phase. Dictation takes precedence.
func PhaseText(phase models.Phase, listening bool) string {
	if listening {
		return "Listening…"
	}
	switch phase {
	case models.PhaseDebouncing:
		return "Waiting for input…"
	case models.PhaseTranslating:
		return "Translating…"
	case models.PhaseError:
		return "Unavailable"
	default:
		return "Ready"
	}
}

// CreateRenderer implements fyne.Widget
func (b *PhaseBadge) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(color.Transparent)
	label := canvas.NewText("", color.White)
	label.TextSize = 12

	r := &phaseBadgeRenderer{dot: dot, label: label, widget: b}
	r.Refresh()
	return r
}

type phaseBadgeRenderer struct {
	dot    *canvas.Circle
	label  *canvas.Text
	widget *PhaseBadge
}

func (r *phaseBadgeRenderer) Destroy() {}

func (r *phaseBadgeRenderer) Layout(size fyne.Size) {
	dotSize := float32(8)
	r.dot.Resize(fyne.NewSize(dotSize, dotSize))
	r.dot.Move(fyne.NewPos(4, (size.Height-dotSize)/2))

	labelY := (size.Height - r.label.MinSize().Height) / 2
	r.label.Move(fyne.NewPos(dotSize+10, labelY))
}

func (r *phaseBadgeRenderer) MinSize() fyne.Size {
	labelSize := r.label.MinSize()
	return fyne.NewSize(8+10+labelSize.Width+4, fyne.Max(16, labelSize.Height))
}

func (r *phaseBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot, r.label}
}

func (r *phaseBadgeRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	colorName := appTheme.PhaseColorName(r.widget.Phase)
	if r.widget.Listening {
		colorName = appTheme.ColorNameListening
	}
	r.dot.FillColor = th.Color(colorName, variant)
	r.dot.Refresh()

	r.label.Text = PhaseText(r.widget.Phase, r.widget.Listening)
	r.label.Color = th.Color(theme.ColorNameForeground, variant)
	r.label.Refresh()
}

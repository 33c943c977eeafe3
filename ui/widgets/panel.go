package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Panel draws content over a rounded, theme-colored background.
type Panel struct {
	widget.BaseWidget

	Content      fyne.CanvasObject
	ColorName    fyne.ThemeColorName
	CornerRadius float32
	Padding      float32
}

// NewPanel creates a panel with the default radius and padding.
func NewPanel(colorName fyne.ThemeColorName, content fyne.CanvasObject) *Panel {
	p := &Panel{
		Content:      content,
		ColorName:    colorName,
		CornerRadius: 8,
		Padding:      8,
	}
	p.ExtendBaseWidget(p)
	return p
}

// SetColorName switches the background color.
func (p *Panel) SetColorName(name fyne.ThemeColorName) {
	if p.ColorName == name {
		return
	}
	p.ColorName = name
	p.Refresh()
}

// CreateRenderer implements fyne.Widget
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	r := &panelRenderer{bg: canvas.NewRectangle(nil), widget: p}
	r.Refresh()
	return r
}

type panelRenderer struct {
	bg     *canvas.Rectangle
	widget *Panel
}

func (r *panelRenderer) Destroy() {}

func (r *panelRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	pad := r.widget.Padding
	r.widget.Content.Resize(fyne.NewSize(size.Width-pad*2, size.Height-pad*2))
	r.widget.Content.Move(fyne.NewPos(pad, pad))
}

func (r *panelRenderer) MinSize() fyne.Size {
	pad := r.widget.Padding * 2
	return r.widget.Content.MinSize().Add(fyne.NewSize(pad, pad))
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.widget.Content}
}

func (r *panelRenderer) Refresh() {
	settings := fyne.CurrentApp().Settings()
	r.bg.FillColor = settings.Theme().Color(r.widget.ColorName, settings.ThemeVariant())
	r.bg.CornerRadius = r.widget.CornerRadius
	r.bg.Refresh()
	r.widget.Content.Refresh()
}

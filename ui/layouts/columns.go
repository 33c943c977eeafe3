// Package layouts holds the custom fyne layouts of the translator window.
package layouts

import (
	"fyne.io/fyne/v2"
)

// TwinColumnLayout gives two columns equal width around a fixed-width center.
// Objects: [0] = left, [1] = center, [2] = right.
type TwinColumnLayout struct {
	CenterWidth float32
	Padding     float32
}

// NewTwinColumnLayout creates a twin column layout.
func NewTwinColumnLayout(centerWidth, padding float32) *TwinColumnLayout {
	return &TwinColumnLayout{CenterWidth: centerWidth, Padding: padding}
}

// Layout arranges the three objects across size.
func (l *TwinColumnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}

	side := (size.Width - l.CenterWidth - l.Padding*2) / 2
	if side < 0 {
		side = 0
	}

	objects[0].Resize(fyne.NewSize(side, size.Height))
	objects[0].Move(fyne.NewPos(0, 0))

	center := objects[1]
	centerMin := center.MinSize()
	center.Resize(fyne.NewSize(l.CenterWidth, centerMin.Height))
	center.Move(fyne.NewPos(side+l.Padding, (size.Height-centerMin.Height)/2))

	objects[2].Resize(fyne.NewSize(side, size.Height))
	objects[2].Move(fyne.NewPos(size.Width-side, 0))
}

// MinSize is twice the wider side column plus the center and padding.
func (l *TwinColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}

	leftMin := objects[0].MinSize()
	centerMin := objects[1].MinSize()
	rightMin := objects[2].MinSize()

	side := fyne.Max(leftMin.Width, rightMin.Width)
	height := fyne.Max(leftMin.Height, fyne.Max(centerMin.Height, rightMin.Height))
	return fyne.NewSize(side*2+l.CenterWidth+l.Padding*2, height)
}

// ContentWithBottomBar pins a fixed-height bar below the main content.
// Objects: [0] = content, [1] = bottom bar.
type ContentWithBottomBar struct {
	BottomHeight float32
}

// NewContentWithBottomBar creates the layout.
func NewContentWithBottomBar(bottomHeight float32) *ContentWithBottomBar {
	return &ContentWithBottomBar{BottomHeight: bottomHeight}
}

// Layout arranges content above the bar.
func (l *ContentWithBottomBar) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}

	barHeight := fyne.Max(l.BottomHeight, objects[1].MinSize().Height)
	contentHeight := size.Height - barHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	objects[0].Resize(fyne.NewSize(size.Width, contentHeight))
	objects[0].Move(fyne.NewPos(0, 0))

	objects[1].Resize(fyne.NewSize(size.Width, barHeight))
	objects[1].Move(fyne.NewPos(0, contentHeight))
}

// MinSize returns the minimum size
func (l *ContentWithBottomBar) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, l.BottomHeight)
	}

	contentMin := objects[0].MinSize()
	bottomMin := objects[1].MinSize()

	return fyne.NewSize(
		fyne.Max(contentMin.Width, bottomMin.Width),
		contentMin.Height+fyne.Max(l.BottomHeight, bottomMin.Height),
	)
}
